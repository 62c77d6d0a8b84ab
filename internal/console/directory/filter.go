package directory

import (
	"strings"

	"github.com/akimenko/userdesk/internal/console/models"
)

// Filter returns the users whose first name, last name, or email contains
// term, case-insensitively. It only ever sees the currently loaded page;
// the server is not consulted. An empty term matches everything.
func Filter(users []models.User, term string) []models.User {
	if term == "" {
		return users
	}

	needle := strings.ToLower(term)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.FirstName), needle) ||
			strings.Contains(strings.ToLower(u.LastName), needle) ||
			strings.Contains(strings.ToLower(u.Email), needle) {
			out = append(out, u)
		}
	}
	return out
}
