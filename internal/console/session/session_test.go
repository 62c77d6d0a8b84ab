package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akimenko/userdesk/internal/console/api"
	"github.com/akimenko/userdesk/internal/console/models"
)

// ---- fakes ----

type fakeLoginAPI struct {
	Token string
	Err   error

	LastCred models.Credentials
	calls    int
}

func (f *fakeLoginAPI) Login(ctx context.Context, cred models.Credentials) (string, error) {
	f.calls++
	f.LastCred = cred
	return f.Token, f.Err
}

type fakeTokenStore struct {
	Token string
	Email string

	LoadErr  error
	SaveErr  error
	ClearErr error

	saves  int
	clears int
}

func (f *fakeTokenStore) Load(ctx context.Context) (string, string, error) {
	return f.Token, f.Email, f.LoadErr
}

func (f *fakeTokenStore) Save(ctx context.Context, token, email string) error {
	f.saves++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Token, f.Email = token, email
	return nil
}

func (f *fakeTokenStore) Clear(ctx context.Context) error {
	f.clears++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Token, f.Email = "", ""
	return nil
}

// ---- tests ----

func TestStore_InitResolvesUnknown(t *testing.T) {
	ctx := context.Background()

	s := New(&fakeLoginAPI{}, &fakeTokenStore{})
	require.Equal(t, StateUnknown, s.State())
	require.NoError(t, s.Init(ctx))
	require.Equal(t, StateAnonymous, s.State())

	s = New(&fakeLoginAPI{}, &fakeTokenStore{Token: "persisted", Email: "eve.holt@reqres.in"})
	require.NoError(t, s.Init(ctx))
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "persisted", s.Token())
	require.Equal(t, "eve.holt@reqres.in", s.Email())
}

func TestStore_LoginSuccessPersistsToken(t *testing.T) {
	tokens := &fakeTokenStore{}
	s := New(&fakeLoginAPI{Token: "QpwL5tke4Pnpja7X4"}, tokens)
	require.NoError(t, s.Init(context.Background()))

	err := s.Login(context.Background(), models.Credentials{Email: "eve.holt@reqres.in", Password: "pistol"})
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())
	require.NotEmpty(t, s.Token())
	require.Empty(t, s.Err())
	require.False(t, s.Loading())
	require.Equal(t, "QpwL5tke4Pnpja7X4", tokens.Token)
	require.Equal(t, "eve.holt@reqres.in", tokens.Email)
}

func TestStore_LoginFailureStaysAnonymous(t *testing.T) {
	tokens := &fakeTokenStore{}
	s := New(&fakeLoginAPI{Err: api.ErrUnauthorized}, tokens)
	require.NoError(t, s.Init(context.Background()))

	err := s.Login(context.Background(), models.Credentials{Email: "x@y.com", Password: "wrong"})
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.False(t, s.IsAuthenticated())
	require.Equal(t, "Invalid email or password", s.Err())
	require.False(t, s.Loading(), "loading must be released on failure")
	require.Zero(t, tokens.saves)
}

func TestStore_LoginClearsPreviousError(t *testing.T) {
	apiStub := &fakeLoginAPI{Err: api.ErrUnauthorized}
	s := New(apiStub, &fakeTokenStore{})
	require.NoError(t, s.Init(context.Background()))

	_ = s.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.NotEmpty(t, s.Err())

	apiStub.Err = nil
	apiStub.Token = "tok"
	require.NoError(t, s.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"}))
	require.Empty(t, s.Err())
}

func TestStore_LogoutAlwaysClears(t *testing.T) {
	tokens := &fakeTokenStore{Token: "tok", Email: "a@b.co"}
	s := New(&fakeLoginAPI{}, tokens)
	require.NoError(t, s.Init(context.Background()))
	require.True(t, s.IsAuthenticated())

	require.NoError(t, s.Logout(context.Background()))
	require.Equal(t, StateAnonymous, s.State())
	require.Empty(t, s.Token())
	require.Equal(t, 1, tokens.clears)

	// Logout when already anonymous is still a clean no-op clear.
	require.NoError(t, s.Logout(context.Background()))
	require.Equal(t, StateAnonymous, s.State())
}

func TestStore_PersistFailureSurfaces(t *testing.T) {
	boom := errors.New("disk full")
	s := New(&fakeLoginAPI{Token: "tok"}, &fakeTokenStore{SaveErr: boom})
	require.NoError(t, s.Init(context.Background()))

	err := s.Login(context.Background(), models.Credentials{Email: "a@b.co", Password: "x"})
	require.ErrorIs(t, err, boom)
	require.False(t, s.Loading())
}

func TestStore_UsageOutsideWiringFailsFast(t *testing.T) {
	var s *Store
	require.ErrorIs(t, s.Init(context.Background()), ErrNoSession)
	require.ErrorIs(t, s.Login(context.Background(), models.Credentials{}), ErrNoSession)
	require.ErrorIs(t, s.Logout(context.Background()), ErrNoSession)
	require.Empty(t, s.Token())

	zero := &Store{}
	require.ErrorIs(t, zero.Login(context.Background(), models.Credentials{}), ErrNoSession)
}
