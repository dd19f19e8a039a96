package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool { return r == RoleUser || r == RoleAdmin }

type User struct {
	ID           string
	Name         string
	Email        string     // trimmed, lower-cased
	PasswordHash string     // argon2id PHC string
	Role         Role
	MFAEnabledAt *time.Time // set once TOTP enrollment is confirmed
	MFASecret    *string    // base32 TOTP secret, pending or active
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) MFAEnabled() bool { return u.MFAEnabledAt != nil }

// Identity is the authenticated caller. It never carries credentials.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
