package query

import (
	"context"
	"errors"

	"github.com/akimenko/userdesk/internal/console/models"
)

// ErrInvalidID is returned for UserByID calls with a non-positive id.
// The query is disabled in that case and no request is sent.
var ErrInvalidID = errors.New("invalid user id")

// Fetcher is the slice of the API adapter the read path needs.
type Fetcher interface {
	ListUsers(ctx context.Context, page int) (models.UserPage, error)
	GetUser(ctx context.Context, id int) (models.User, error)
}

// Users serves directory reads through the cache. A fetch happens only on
// a cache miss or after the key was invalidated; failed fetches are not
// cached, so the next access retries.
//
// Note an in-flight fetch is not tied to the invalidation that may race
// with it: whichever response lands last populates the cache.
type Users struct {
	api   Fetcher
	cache *Cache
}

func NewUsers(api Fetcher) *Users {
	return &Users{api: api, cache: NewCache()}
}

// Page returns one directory page, cached under {"users", page}.
func (q *Users) Page(ctx context.Context, page int) (models.UserPage, error) {
	k := Key{Kind: KindUsers, Param: page}
	if v, ok := q.cache.Lookup(k); ok {
		return v.(models.UserPage), nil
	}

	p, err := q.api.ListUsers(ctx, page)
	if err != nil {
		return models.UserPage{}, err
	}
	q.cache.Store(k, p)
	return p, nil
}

// ByID returns one user record, cached under {"user", id}.
func (q *Users) ByID(ctx context.Context, id int) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}

	k := Key{Kind: KindUser, Param: id}
	if v, ok := q.cache.Lookup(k); ok {
		return v.(models.User), nil
	}

	u, err := q.api.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	q.cache.Store(k, u)
	return u, nil
}

// InvalidateUser marks the single-record entry for id stale.
func (q *Users) InvalidateUser(id int) {
	q.cache.Invalidate(Key{Kind: KindUser, Param: id})
}

// InvalidatePages marks every cached directory page stale.
func (q *Users) InvalidatePages() {
	q.cache.InvalidateKind(KindUsers)
}
