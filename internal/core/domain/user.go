package domain

import "time"

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// User models an account holder. Email is the natural key.
type User struct {
	ID           string    `json:"id,omitempty"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Claims is the identity snapshot carried by a bearer token.
// PasswordHash is only populated when hash embedding is enabled.
type Claims struct {
	UserID       string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// ClaimsFromUser snapshots u. The password hash is copied only when
// withHash is set.
func ClaimsFromUser(u *User, withHash bool) Claims {
	c := Claims{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
	}
	if withHash {
		c.PasswordHash = u.PasswordHash
	}
	return c
}
