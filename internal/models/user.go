package models

import "github.com/google/uuid"

// User holds editor account records. Password is a bcrypt hash, never the
// raw credential, and is excluded from JSON output.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Password string    `json:"-"`
}

type InsertUser struct {
	Username string
	Password string
}
