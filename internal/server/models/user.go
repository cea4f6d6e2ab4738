package models

import "time"

// User is an account row. PasswordHash is a bcrypt hash and never leaves
// the server.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash []byte
	CreatedAt    time.Time
}
