package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/akimenko/userdesk/internal/console/directory"
	"github.com/akimenko/userdesk/internal/console/models"
)

const loadErrMsg = "Error loading users. Please try again."

// List shows a directory page: the current one, or the page given as an
// argument (clamped to valid bounds).
func (a *App) List(ctx context.Context, args []string) error {
	var (
		page models.UserPage
		err  error
	)

	if len(args) > 0 {
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			fmt.Fprintln(a.out, "usage: list [page]")
			return nil
		}
		page, err = a.directory.Goto(ctx, n)
	} else {
		page, err = a.directory.Current(ctx)
	}

	if err != nil {
		fmt.Fprintln(a.out, loadErrMsg)
		return err
	}

	a.renderPage(page, page.Data)
	return nil
}

// Next moves one page forward.
func (a *App) Next(ctx context.Context) error {
	page, err := a.directory.Next(ctx)
	if err != nil {
		fmt.Fprintln(a.out, loadErrMsg)
		return err
	}
	a.renderPage(page, page.Data)
	return nil
}

// Prev moves one page back.
func (a *App) Prev(ctx context.Context) error {
	page, err := a.directory.Prev(ctx)
	if err != nil {
		fmt.Fprintln(a.out, loadErrMsg)
		return err
	}
	a.renderPage(page, page.Data)
	return nil
}

// Search filters the currently loaded page client-side. The term is not
// remembered between invocations and never reaches the server.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: search <term>")
		return nil
	}
	term := strings.Join(args, " ")

	page, err := a.directory.Current(ctx)
	if err != nil {
		fmt.Fprintln(a.out, loadErrMsg)
		return err
	}

	matched := directory.Filter(page.Data, term)
	if len(matched) == 0 {
		fmt.Fprintln(a.out, "No users found matching your search.")
		return nil
	}
	a.renderPage(page, matched)
	return nil
}

// Show prints one user record in full.
func (a *App) Show(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "show")
	if !ok {
		return nil
	}

	u, err := a.directory.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, loadErrMsg)
		return err
	}

	fmt.Fprintf(a.out, "ID:     %d\n", u.ID)
	fmt.Fprintf(a.out, "Name:   %s\n", u.FullName())
	fmt.Fprintf(a.out, "Email:  %s\n", u.Email)
	fmt.Fprintf(a.out, "Avatar: %s\n", u.Avatar)
	return nil
}

func (a *App) renderPage(page models.UserPage, users []models.User) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.FullName(), u.Email)
	}
	_ = w.Flush()

	totalPages := page.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	fmt.Fprintf(a.out, "Page %d of %d\n", page.Page, totalPages)
}

// parseID extracts a positive integer id from args, printing usage on
// malformed input.
func (a *App) parseID(args []string, cmd string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "usage: %s <id>\n", cmd)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		fmt.Fprintf(a.out, "usage: %s <id>\n", cmd)
		return 0, false
	}
	return id, true
}
