package state

import (
	"context"
	"database/sql"

	"github.com/akimenko/userdesk/internal/dbx"
)

// Keys held in the state table. The token cell is the sole authorization
// signal; its presence means "logged in".
const (
	keyToken   = "token"
	keyAccount = "account_email"
)

// TokenStore reads and writes the persisted session token plus the email
// it was issued for. Only the session store mutates it.
type TokenStore struct {
	db *sql.DB
}

func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Load returns the persisted token and account email; both empty when
// logged out.
func (s *TokenStore) Load(ctx context.Context) (token, email string, err error) {
	repo := NewSQLiteRepository(s.db)

	t, err := repo.Get(ctx, keyToken)
	if err != nil {
		return "", "", err
	}
	e, err := repo.Get(ctx, keyAccount)
	if err != nil {
		return "", "", err
	}
	return string(t), string(e), nil
}

// Save persists token and email atomically.
func (s *TokenStore) Save(ctx context.Context, token, email string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyAccount, []byte(email))
	})
}

// Clear wipes the persisted session.
func (s *TokenStore) Clear(ctx context.Context) error {
	return NewSQLiteRepository(s.db).Clear(ctx)
}
