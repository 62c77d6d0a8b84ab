// Package domain defines the server-side user model and the sentinel
// errors services and handlers translate into HTTP statuses.
package domain

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User is a directory account. PasswordHash is a bcrypt hash and never
// leaves the server; API responses are built from PublicUser.
type User struct {
	ID           int
	Email        string
	FirstName    string
	LastName     string
	Avatar       string
	PasswordHash string
}

// PublicUser is the wire shape of a user record.
type PublicUser struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// Public strips the credential fields.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
	}
}
