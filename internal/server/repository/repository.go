// Package repository provides the user store behind the directory API.
// Two implementations exist: an in-memory store seeded with demo data and
// a PostgreSQL store with embedded migrations.
package repository

import (
	"context"

	"github.com/akimenko/userdesk/internal/server/domain"
)

type Repository interface {
	// GetByEmail looks an account up for authentication; the returned
	// user includes the password hash.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	Get(ctx context.Context, id int) (*domain.User, error)

	// List returns users ordered by id, skipping offset and returning at
	// most limit records.
	List(ctx context.Context, offset, limit int) ([]domain.User, error)

	Count(ctx context.Context) (int, error)

	// Update replaces the profile fields (email, first and last name) of
	// the user with u.ID and returns the stored record.
	Update(ctx context.Context, u *domain.User) (*domain.User, error)

	Delete(ctx context.Context, id int) error
}
