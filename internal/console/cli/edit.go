package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimenko/userdesk/internal/console/directory"
	"github.com/akimenko/userdesk/internal/console/models"
)

// Edit loads a user, prefills an editable form with the current values
// (the prefill happens once, from the load that opened the form), and
// submits the update. On success the caches are invalidated and the user
// is told; on failure the entered values are echoed back so nothing is
// lost.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "edit")
	if !ok {
		return nil
	}

	u, err := a.directory.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Error loading user data. Please try again.")
		return err
	}

	fmt.Fprintf(a.out, "Editing user %d (%s). Press Enter to keep the current value.\n", u.ID, u.FullName())

	firstName, err := GetTextWithDefault(a.reader, "First name", u.FirstName, a.out)
	if err != nil {
		return err
	}
	lastName, err := GetTextWithDefault(a.reader, "Last name", u.LastName, a.out)
	if err != nil {
		return err
	}
	email, err := GetTextWithDefault(a.reader, "Email", u.Email, a.out)
	if err != nil {
		return err
	}

	upd := models.UserUpdate{FirstName: firstName, LastName: lastName, Email: email}

	_, err = a.directory.Update(ctx, id, upd)
	if err != nil {
		var ferrs directory.FieldErrors
		if errors.As(err, &ferrs) {
			for _, fe := range ferrs {
				fmt.Fprintln(a.out, fe.Message)
			}
			fmt.Fprintf(a.out, "Entered values kept: %s %s <%s>\n", upd.FirstName, upd.LastName, upd.Email)
			return err
		}
		fmt.Fprintln(a.out, "Failed to update user. Please try again.")
		return err
	}

	fmt.Fprintln(a.out, "User updated successfully!")
	return nil
}
