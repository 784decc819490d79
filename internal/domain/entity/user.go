package entity

import "time"

// User is an account that can log in and receive tokens.
type User struct {
	ID                  string
	Username            string
	Email               string
	PasswordHash        string // bcrypt hash; plaintext is never stored.
	Role                Role
	ResetPasswordToken  string
	ResetPasswordExpire *time.Time
	CreatedAt           time.Time
}
