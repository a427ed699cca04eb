package service

import "testing"

func TestParsePolicies(t *testing.T) {
	for _, s := range []string{"reject", "ignore", "allow"} {
		if p, err := ParseAdminSignupPolicy(s); err != nil || string(p) != s {
			t.Fatalf("ParseAdminSignupPolicy(%q) = %q, %v", s, p, err)
		}
	}
	if _, err := ParseAdminSignupPolicy("maybe"); err == nil {
		t.Fatalf("expected error for unknown admin policy")
	}

	for _, s := range []string{"index", "lock", "lookup"} {
		if u, err := ParseEmailUniqueness(s); err != nil || string(u) != s {
			t.Fatalf("ParseEmailUniqueness(%q) = %q, %v", s, u, err)
		}
	}
	if _, err := ParseEmailUniqueness(""); err == nil {
		t.Fatalf("expected error for empty uniqueness mode")
	}
}
