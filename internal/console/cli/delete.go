package cli

import (
	"context"
	"fmt"
)

// Delete asks for explicit confirmation before any network call, then
// removes the user and invalidates cached pages.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, ok := a.parseID(args, "delete")
	if !ok {
		return nil
	}

	if !Confirm(a.reader, "Are you sure you want to delete this user?", a.out) {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.directory.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Failed to delete user.")
		return err
	}

	fmt.Fprintln(a.out, "User deleted successfully!")
	return nil
}
