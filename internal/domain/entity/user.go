// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can sign in and own books.
type User struct {
	ID        string    `json:"_id"`   // Opaque store identifier.
	Name      string    `json:"name"`  // Display name.
	Email     string    `json:"email"` // Unique login identifier.
	Password  string    `json:"-"`     // bcrypt hash, never serialized.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
