// Package cli implements the interactive console: a REPL over the session
// store and the directory workflow.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/akimenko/userdesk/internal/console/api"
	"github.com/akimenko/userdesk/internal/console/config"
	"github.com/akimenko/userdesk/internal/console/directory"
	"github.com/akimenko/userdesk/internal/console/models"
	"github.com/akimenko/userdesk/internal/console/query"
	"github.com/akimenko/userdesk/internal/console/session"
	"github.com/akimenko/userdesk/internal/console/state"
)

// sessionIface and directoryIface are the slices of the session store and
// directory service the commands use; tests provide stubs.
type sessionIface interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, cred models.Credentials) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Email() string
	Err() string
}

type directoryIface interface {
	Current(ctx context.Context) (models.UserPage, error)
	Goto(ctx context.Context, n int) (models.UserPage, error)
	Next(ctx context.Context) (models.UserPage, error)
	Prev(ctx context.Context) (models.UserPage, error)
	Get(ctx context.Context, id int) (models.User, error)
	Update(ctx context.Context, id int, upd models.UserUpdate) (models.User, error)
	Delete(ctx context.Context, id int) error
}

type App struct {
	config    *config.Config
	sessions  sessionIface
	directory directoryIface
	db        *sql.DB
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp wires the console: state database, API client, session store,
// cached query layer, and directory workflow.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	db, err := state.Open(ctx, c.StateFile)
	if err != nil {
		return nil, fmt.Errorf("opening state database: %w", err)
	}

	var sessions *session.Store
	client := api.New(c.ServerBaseURL, func() string { return sessions.Token() })
	sessions = session.New(client, state.NewTokenStore(db))

	queries := query.NewUsers(client)
	dir := directory.NewService(client, queries)

	return &App{
		config:    c,
		sessions:  sessions,
		directory: dir,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Close releases the state database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}

// getStatus renders the prompt suffix: "(email)" when authenticated.
func (a *App) getStatus() string {
	if e := a.sessions.Email(); a.isLoggedIn() && e != "" {
		return fmt.Sprintf("(%s)", e)
	}
	return ""
}

// Run resolves the persisted session and drives the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.sessions.Init(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Welcome to userdesk (type 'help' for commands)")
	if a.isLoggedIn() {
		fmt.Fprintf(a.out, "Restored session for %s\n", a.sessions.Email())
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}
