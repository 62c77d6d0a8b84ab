// Package directory orchestrates the list/edit/delete workflow of the user
// console on top of the cached query layer.
package directory

import (
	"context"
	"sync"

	"github.com/akimenko/userdesk/internal/console/models"
)

// Mutator is the slice of the API adapter used for write operations.
type Mutator interface {
	UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int) error
}

// Queries is the cached read path (see the query package).
type Queries interface {
	Page(ctx context.Context, page int) (models.UserPage, error)
	ByID(ctx context.Context, id int) (models.User, error)
	InvalidateUser(id int)
	InvalidatePages()
}

// Service tracks the current directory position and runs mutations with
// the cache invalidation that keeps listings consistent with the server.
type Service struct {
	api     Mutator
	queries Queries

	mu         sync.Mutex
	page       int
	totalPages int // 0 until the first page has loaded
}

func NewService(api Mutator, queries Queries) *Service {
	return &Service{api: api, queries: queries, page: 1}
}

// clamp bounds a requested page to [1, totalPages]. Before the first load
// the upper bound is unknown and only the lower bound applies.
func (s *Service) clamp(page int) int {
	if page < 1 {
		page = 1
	}
	if s.totalPages > 0 && page > s.totalPages {
		page = s.totalPages
	}
	return page
}

func (s *Service) load(ctx context.Context, page int) (models.UserPage, error) {
	s.mu.Lock()
	page = s.clamp(page)
	s.mu.Unlock()

	p, err := s.queries.Page(ctx, page)
	if err != nil {
		return models.UserPage{}, err
	}

	s.mu.Lock()
	s.page = p.Page
	s.totalPages = p.TotalPages
	s.mu.Unlock()
	return p, nil
}

// Current returns the page the console is positioned on.
func (s *Service) Current(ctx context.Context) (models.UserPage, error) {
	s.mu.Lock()
	page := s.page
	s.mu.Unlock()
	return s.load(ctx, page)
}

// Goto moves to page n, clamped at both bounds.
func (s *Service) Goto(ctx context.Context, n int) (models.UserPage, error) {
	return s.load(ctx, n)
}

// Next advances one page, staying within bounds.
func (s *Service) Next(ctx context.Context) (models.UserPage, error) {
	s.mu.Lock()
	page := s.page + 1
	s.mu.Unlock()
	return s.load(ctx, page)
}

// Prev goes back one page, staying within bounds.
func (s *Service) Prev(ctx context.Context) (models.UserPage, error) {
	s.mu.Lock()
	page := s.page - 1
	s.mu.Unlock()
	return s.load(ctx, page)
}

// Get loads a single record through the cache.
func (s *Service) Get(ctx context.Context, id int) (models.User, error) {
	return s.queries.ByID(ctx, id)
}

// Update validates the edited fields, submits them, and on success marks
// both the single-record entry and every cached page stale. Validation
// failures are returned as FieldErrors and nothing is sent.
func (s *Service) Update(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	if ferrs := Validate(upd); len(ferrs) > 0 {
		return models.User{}, ferrs
	}

	u, err := s.api.UpdateUser(ctx, id, upd)
	if err != nil {
		return models.User{}, err
	}

	s.queries.InvalidateUser(id)
	s.queries.InvalidatePages()
	return u, nil
}

// Delete removes a record and on success marks every cached page stale.
// Confirmation is the caller's responsibility; concurrent deletes of the
// same id are not deduplicated and the loser surfaces a not-found error.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.queries.InvalidatePages()
	return nil
}
