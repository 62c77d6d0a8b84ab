// Package models defines the wire-level data types exchanged with the
// user-management API.
package models

import "fmt"

// Credentials is a login request payload. It is submitted once and
// never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is a single server-owned user record. The ID is assigned by the
// server and never changes.
type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// FullName returns "First Last" for display purposes.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// UserUpdate is the editable subset of a User, submitted on edit.
type UserUpdate struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// UserPage is one 1-indexed slice of the server-side user collection,
// returned verbatim by the server.
type UserPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}
