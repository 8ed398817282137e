package domain

import "time"

// User is the identity record behind the auth core. RefreshToken is the
// single active session slot: at most one non-nil value per user, replaced
// on every login or rotation and cleared on logout.
type User struct {
	Mno          int
	Email        string
	PasswordHash string
	Name         string
	Role         string
	RefreshToken *string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
