// Package api exposes the directory over HTTP: login, paged user
// listings, and single-user CRUD, all JSON.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/akimenko/userdesk/internal/logging"
	"github.com/akimenko/userdesk/internal/server/domain"
	"github.com/akimenko/userdesk/internal/server/service"
)

type Handler struct {
	auth   *service.AuthService
	users  *service.UsersService
	logger logging.Logger
}

func NewHandler(auth *service.AuthService, users *service.UsersService, logger logging.Logger) *Handler {
	return &Handler{auth: auth, users: users, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type updateRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

// userEnvelope matches the single-user response shape: {"data": {...}}.
type userEnvelope struct {
	Data domain.PublicUser `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login exchanges credentials for a bearer token.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		}
		h.logger.Error(c.Request().Context(), "login error", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

// ListUsers returns one page of the directory. The page query parameter
// defaults to 1; malformed values also fall back to 1.
func (h *Handler) ListUsers(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.users.Page(c.Request().Context(), page)
	if err != nil {
		h.logger.Error(c.Request().Context(), "list users error", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetUser returns a single user wrapped in a data envelope.
func (h *Handler) GetUser(c echo.Context) error {
	id, ok := h.userID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}

	u, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return h.userError(c, err)
	}

	return c.JSON(http.StatusOK, userEnvelope{Data: u})
}

// UpdateUser replaces the profile fields of a user.
func (h *Handler) UpdateUser(c echo.Context) error {
	id, ok := h.userID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	u, err := h.users.Update(c.Request().Context(), id, req.Email, req.FirstName, req.LastName)
	if err != nil {
		return h.userError(c, err)
	}

	return c.JSON(http.StatusOK, userEnvelope{Data: u})
}

// DeleteUser removes a user and returns 204.
func (h *Handler) DeleteUser(c echo.Context) error {
	id, ok := h.userID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return h.userError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Health is the liveness probe.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) userID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (h *Handler) userError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	}
	h.logger.Error(c.Request().Context(), "user operation error", "error", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
