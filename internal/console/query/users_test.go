package query

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akimenko/userdesk/internal/console/models"
)

// fakeFetcher counts calls so tests can assert on cache hits vs. fetches.
type fakeFetcher struct {
	listCalls int
	getCalls  int

	ListRet models.UserPage
	ListErr error

	GetRet models.User
	GetErr error
}

func (f *fakeFetcher) ListUsers(ctx context.Context, page int) (models.UserPage, error) {
	f.listCalls++
	return f.ListRet, f.ListErr
}

func (f *fakeFetcher) GetUser(ctx context.Context, id int) (models.User, error) {
	f.getCalls++
	return f.GetRet, f.GetErr
}

func TestCache_LookupStoreInvalidate(t *testing.T) {
	c := NewCache()
	k := Key{Kind: KindUsers, Param: 1}

	_, ok := c.Lookup(k)
	require.False(t, ok)

	c.Store(k, "v1")
	v, ok := c.Lookup(k)
	require.True(t, ok)
	require.Equal(t, "v1", v)

	c.Invalidate(k)
	_, ok = c.Lookup(k)
	require.False(t, ok, "stale entry must behave like a miss")

	c.Store(k, "v2")
	v, ok = c.Lookup(k)
	require.True(t, ok)
	require.Equal(t, "v2", v)
}

func TestCache_InvalidateKindLeavesOtherKindsFresh(t *testing.T) {
	c := NewCache()
	c.Store(Key{Kind: KindUsers, Param: 1}, "p1")
	c.Store(Key{Kind: KindUsers, Param: 2}, "p2")
	c.Store(Key{Kind: KindUser, Param: 7}, "u7")

	c.InvalidateKind(KindUsers)

	_, ok := c.Lookup(Key{Kind: KindUsers, Param: 1})
	require.False(t, ok)
	_, ok = c.Lookup(Key{Kind: KindUsers, Param: 2})
	require.False(t, ok)
	_, ok = c.Lookup(Key{Kind: KindUser, Param: 7})
	require.True(t, ok)
}

func TestUsers_PageIsCachedUntilInvalidated(t *testing.T) {
	f := &fakeFetcher{ListRet: models.UserPage{Page: 1, PerPage: 6, TotalPages: 2}}
	q := NewUsers(f)
	ctx := context.Background()

	p, err := q.Page(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 1, f.listCalls)

	_, err = q.Page(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, f.listCalls, "second read must hit the cache")

	q.InvalidatePages()

	_, err = q.Page(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, f.listCalls, "stale entry must be re-fetched")
}

func TestUsers_PageFetchErrorIsNotCached(t *testing.T) {
	f := &fakeFetcher{ListErr: errors.New("boom")}
	q := NewUsers(f)
	ctx := context.Background()

	_, err := q.Page(ctx, 1)
	require.Error(t, err)

	f.ListErr = nil
	_, err = q.Page(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 2, f.listCalls)
}

func TestUsers_ByIDDisabledForNonPositiveID(t *testing.T) {
	f := &fakeFetcher{}
	q := NewUsers(f)

	_, err := q.ByID(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidID)
	_, err = q.ByID(context.Background(), -3)
	require.ErrorIs(t, err, ErrInvalidID)
	require.Zero(t, f.getCalls, "disabled query must not fetch")
}

func TestUsers_ByIDCachedPerID(t *testing.T) {
	f := &fakeFetcher{GetRet: models.User{ID: 2, FirstName: "Janet"}}
	q := NewUsers(f)
	ctx := context.Background()

	u, err := q.ByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Janet", u.FirstName)

	_, err = q.ByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 1, f.getCalls)

	q.InvalidateUser(2)
	_, err = q.ByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, f.getCalls)
}
