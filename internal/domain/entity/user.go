// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. PasswordHash stores the bcrypt-hashed
// credential; the plaintext password is never persisted or recoverable.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email, used as the login identifier. Unique.
	PasswordHash string    // One-way transform of the password, verified by PasswordHasher.Check.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
