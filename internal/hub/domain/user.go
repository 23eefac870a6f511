package domain

import "time"

type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string     // argon2 encoded
	RoleID       string     // Foreign key to roles table
	Locale       string     // Preferred UI locale ("sq" or "en")
	TOTPSecret   *string    // TOTP secret (nullable, base32 encoded)
	TOTPEnabled  *time.Time // Timestamp when TOTP was activated (nullable)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TOTPActive reports whether login for this user requires a TOTP code.
// An enrolled-but-unverified secret does not count.
func (u User) TOTPActive() bool {
	return u.TOTPEnabled != nil && u.TOTPSecret != nil && *u.TOTPSecret != ""
}
