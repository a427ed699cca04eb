package service

import "fmt"

// AdminSignupPolicy decides what happens to a caller-supplied isAdmin flag
// at signup.
type AdminSignupPolicy string

const (
	// AdminSignupReject refuses signups that ask for admin rights.
	AdminSignupReject AdminSignupPolicy = "reject"
	// AdminSignupIgnore accepts the signup but drops the flag.
	AdminSignupIgnore AdminSignupPolicy = "ignore"
	// AdminSignupAllow trusts the flag. Legacy behavior: any caller can
	// self-grant admin rights.
	AdminSignupAllow AdminSignupPolicy = "allow"
)

func ParseAdminSignupPolicy(s string) (AdminSignupPolicy, error) {
	switch p := AdminSignupPolicy(s); p {
	case AdminSignupReject, AdminSignupIgnore, AdminSignupAllow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown admin signup policy %q", s)
	}
}

// EmailUniqueness selects how duplicate emails are kept out under
// concurrent signups.
type EmailUniqueness string

const (
	// UniquenessIndex relies on a unique index in the credential store.
	UniquenessIndex EmailUniqueness = "index"
	// UniquenessLock serializes signups per email with a distributed lock.
	UniquenessLock EmailUniqueness = "lock"
	// UniquenessLookup is the legacy lookup-then-insert. Two concurrent
	// signups for the same email can both be admitted.
	UniquenessLookup EmailUniqueness = "lookup"
)

func ParseEmailUniqueness(s string) (EmailUniqueness, error) {
	switch u := EmailUniqueness(s); u {
	case UniquenessIndex, UniquenessLock, UniquenessLookup:
		return u, nil
	default:
		return "", fmt.Errorf("unknown email uniqueness mode %q", s)
	}
}

// Policy bundles the credential lifecycle decisions AccountService applies.
type Policy struct {
	AdminSignup AdminSignupPolicy
	// EmbedPasswordHash copies the stored hash into token claims.
	EmbedPasswordHash bool
	// PreserveEmailCase keeps emails as typed. Records written by a
	// case-sensitive deployment need it to stay reachable.
	PreserveEmailCase bool
}

// DefaultPolicy is the hardened configuration.
func DefaultPolicy() Policy {
	return Policy{AdminSignup: AdminSignupReject}
}
