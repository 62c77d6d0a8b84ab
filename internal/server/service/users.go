package service

import (
	"context"

	"github.com/akimenko/userdesk/internal/logging"
	"github.com/akimenko/userdesk/internal/server/avatar"
	"github.com/akimenko/userdesk/internal/server/domain"
	"github.com/akimenko/userdesk/internal/server/metrics"
	"github.com/akimenko/userdesk/internal/server/repository"
)

// PerPage is the fixed page size of user listings.
const PerPage = 6

// Page is one slice of the directory, with the pagination metadata
// clients use to walk it.
type Page struct {
	Page       int                 `json:"page"`
	PerPage    int                 `json:"per_page"`
	Total      int                 `json:"total"`
	TotalPages int                 `json:"total_pages"`
	Data       []domain.PublicUser `json:"data"`
}

// UsersService serves directory reads and writes. Avatar URLs pass
// through the configured resolver on the way out.
type UsersService struct {
	repo    repository.Repository
	avatars avatar.Resolver
	logger  logging.Logger
}

func NewUsersService(repo repository.Repository, avatars avatar.Resolver, logger logging.Logger) *UsersService {
	if avatars == nil {
		avatars = avatar.StaticResolver{}
	}
	return &UsersService{repo: repo, avatars: avatars, logger: logger}
}

func (s *UsersService) publish(ctx context.Context, u *domain.User) domain.PublicUser {
	pub := u.Public()
	pub.Avatar = s.avatars.Resolve(ctx, u.ID, u.Avatar)
	return pub
}

// Page returns the requested 1-indexed page. Out-of-range pages return
// empty data with correct metadata rather than an error.
func (s *UsersService) Page(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return Page{}, err
	}

	totalPages := (total + PerPage - 1) / PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	users, err := s.repo.List(ctx, (page-1)*PerPage, PerPage)
	if err != nil {
		return Page{}, err
	}

	data := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		data = append(data, s.publish(ctx, &users[i]))
	}

	return Page{
		Page:       page,
		PerPage:    PerPage,
		Total:      total,
		TotalPages: totalPages,
		Data:       data,
	}, nil
}

func (s *UsersService) Get(ctx context.Context, id int) (domain.PublicUser, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.PublicUser{}, err
	}
	return s.publish(ctx, u), nil
}

// Update replaces the profile fields of a user.
func (s *UsersService) Update(ctx context.Context, id int, email, firstName, lastName string) (domain.PublicUser, error) {
	updated, err := s.repo.Update(ctx, &domain.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return domain.PublicUser{}, err
	}

	metrics.UserMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info(ctx, "user updated", "user_id", id)
	return s.publish(ctx, updated), nil
}

func (s *UsersService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.UserMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info(ctx, "user deleted", "user_id", id)
	return nil
}
