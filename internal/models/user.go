package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Password holds a bcrypt hash, never the
// plaintext credential.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

