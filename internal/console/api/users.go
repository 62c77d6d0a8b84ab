package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/akimenko/userdesk/internal/console/models"
)

type loginResponse struct {
	Token string `json:"token"`
}

// userEnvelope wraps single-record responses: {"data": {...}}.
type userEnvelope struct {
	Data models.User `json:"data"`
}

// Login exchanges credentials for a session token. Bad credentials surface
// as ErrUnauthorized.
func (c *Client) Login(ctx context.Context, cred models.Credentials) (string, error) {
	var resp loginResponse
	if err := c.request(ctx, http.MethodPost, "/login", cred, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListUsers fetches one 1-indexed page of the user directory.
func (c *Client) ListUsers(ctx context.Context, page int) (models.UserPage, error) {
	var resp models.UserPage
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/users?page=%d", page), nil, &resp)
	return resp, err
}

// GetUser fetches a single user record. Unknown ids surface as ErrNotFound.
func (c *Client) GetUser(ctx context.Context, id int) (models.User, error) {
	var resp userEnvelope
	err := c.request(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &resp)
	return resp.Data, err
}

// UpdateUser submits edited fields and returns the record as stored.
func (c *Client) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	var resp userEnvelope
	err := c.request(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), upd, &resp)
	return resp.Data, err
}

// DeleteUser removes a user record.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.request(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
