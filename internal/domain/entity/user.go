// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User represents a registered identity of the service.
type User struct {
	ID           int64     // Opaque integer handle, generated by the database.
	Email        string    // Unique, case-normalized email address.
	PasswordHash string    // Stores the bcrypt-hashed password, never the plaintext.
	IsActive     bool      // Inactive users keep their record but cannot act.
	IsVerified   bool      // Set to true after the first successful login.
	Role         Role      // Closed role enumeration: subscriber, author, superuser.
	CreatedAt    time.Time // Timestamp of when the identity was registered.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// NormalizeEmail lower-cases and trims an email so uniqueness checks are
// case-insensitive across the whole identity set.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
