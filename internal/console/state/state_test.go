package state

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *TokenStore {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTokenStore(db)
}

func TestTokenStore_EmptyWhenLoggedOut(t *testing.T) {
	s := openTestDB(t)

	token, email, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, token)
	require.Empty(t, email)
}

func TestTokenStore_SaveLoadClear(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "QpwL5tke4Pnpja7X4", "eve.holt@reqres.in"))

	token, email, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "QpwL5tke4Pnpja7X4", token)
	require.Equal(t, "eve.holt@reqres.in", email)

	// A second login overwrites the cell.
	require.NoError(t, s.Save(ctx, "other-token", "janet.weaver@reqres.in"))
	token, email, err = s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "other-token", token)
	require.Equal(t, "janet.weaver@reqres.in", email)

	require.NoError(t, s.Clear(ctx))
	token, email, err = s.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
	require.Empty(t, email)
}

func TestRepository_GetMissingKeyReturnsNil(t *testing.T) {
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v, err := NewSQLiteRepository(db).Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, v)
}
