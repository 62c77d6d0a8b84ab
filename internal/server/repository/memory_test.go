package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/akimenko/userdesk/internal/server/domain"
)

func TestMemoryRepository_SeededDemoData(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryRepository()
	require.NoError(t, err)

	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	u, err := repo.GetByEmail(ctx, "eve.holt@reqres.in")
	require.NoError(t, err)
	require.Equal(t, 4, u.ID)
	require.Equal(t, "https://reqres.in/img/faces/4-image.jpg", u.Avatar)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pistol")))
}

func TestMemoryRepository_ListPagination(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryRepository()
	require.NoError(t, err)

	ctx := context.Background()

	first, err := repo.List(ctx, 0, 6)
	require.NoError(t, err)
	require.Len(t, first, 6)
	require.Equal(t, 1, first[0].ID)
	require.Equal(t, 6, first[5].ID)

	second, err := repo.List(ctx, 6, 6)
	require.NoError(t, err)
	require.Len(t, second, 6)
	require.Equal(t, 7, second[0].ID)

	past, err := repo.List(ctx, 12, 6)
	require.NoError(t, err)
	require.Empty(t, past)
}

func TestMemoryRepository_Update(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryRepository()
	require.NoError(t, err)

	ctx := context.Background()

	updated, err := repo.Update(ctx, &domain.User{
		ID: 2, Email: "janet@example.com", FirstName: "Janet", LastName: "W.",
	})
	require.NoError(t, err)
	require.Equal(t, "janet@example.com", updated.Email)
	require.Equal(t, "W.", updated.LastName)
	require.NotEmpty(t, updated.Avatar, "avatar must survive profile updates")
	require.NotEmpty(t, updated.PasswordHash, "credentials must survive profile updates")

	_, err = repo.Update(ctx, &domain.User{ID: 99, Email: "x@y.z", FirstName: "X", LastName: "Y"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryRepository_Delete(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryRepository()
	require.NoError(t, err)

	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 3))

	_, err = repo.Get(ctx, 3)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 3), domain.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 11, n)
}

func TestMemoryRepository_GetByEmail_Unknown(t *testing.T) {
	t.Parallel()

	repo, err := NewMemoryRepository()
	require.NoError(t, err)

	_, err = repo.GetByEmail(context.Background(), "nobody@reqres.in")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
