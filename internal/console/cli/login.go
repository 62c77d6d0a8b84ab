package cli

import (
	"context"
	"fmt"

	"github.com/akimenko/userdesk/internal/console/models"
	"github.com/akimenko/userdesk/internal/shared"
)

// Login prompts for credentials and authenticates. Failures are reported
// through the session store's error message so the wording matches the
// original console ("Invalid email or password").
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	err = a.sessions.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	shared.WipeByteArray(password)
	if err != nil {
		if msg := a.sessions.Err(); msg != "" {
			fmt.Fprintln(a.out, msg)
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

// Logout forgets the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
