package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/akimenko/userdesk/internal/server/domain"
)

// seedAccounts is the demo directory the in-memory store starts with.
// Every account authenticates with the password "pistol".
var seedAccounts = []domain.User{
	{ID: 1, Email: "george.bluth@reqres.in", FirstName: "George", LastName: "Bluth"},
	{ID: 2, Email: "janet.weaver@reqres.in", FirstName: "Janet", LastName: "Weaver"},
	{ID: 3, Email: "emma.wong@reqres.in", FirstName: "Emma", LastName: "Wong"},
	{ID: 4, Email: "eve.holt@reqres.in", FirstName: "Eve", LastName: "Holt"},
	{ID: 5, Email: "charles.morris@reqres.in", FirstName: "Charles", LastName: "Morris"},
	{ID: 6, Email: "tracey.ramos@reqres.in", FirstName: "Tracey", LastName: "Ramos"},
	{ID: 7, Email: "michael.lawson@reqres.in", FirstName: "Michael", LastName: "Lawson"},
	{ID: 8, Email: "lindsay.ferguson@reqres.in", FirstName: "Lindsay", LastName: "Ferguson"},
	{ID: 9, Email: "tobias.funke@reqres.in", FirstName: "Tobias", LastName: "Funke"},
	{ID: 10, Email: "byron.fields@reqres.in", FirstName: "Byron", LastName: "Fields"},
	{ID: 11, Email: "george.edwards@reqres.in", FirstName: "George", LastName: "Edwards"},
	{ID: 12, Email: "rachel.howell@reqres.in", FirstName: "Rachel", LastName: "Howell"},
}

const seedPassword = "pistol"

// MemoryRepository keeps the directory in a map guarded by a mutex. It is
// the default backend and makes the server runnable without a database.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[int]domain.User
}

func NewMemoryRepository() (*MemoryRepository, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("seeding demo accounts: %w", err)
	}

	users := make(map[int]domain.User, len(seedAccounts))
	for _, u := range seedAccounts {
		u.Avatar = fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", u.ID)
		u.PasswordHash = string(hash)
		users[u.ID] = u
	}

	return &MemoryRepository{users: users}, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryRepository) Get(ctx context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]domain.User, 0, limit)
	for i := offset; i < len(ids) && len(out) < limit; i++ {
		out = append(out, r.users[ids[i]])
	}
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *MemoryRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[u.ID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	stored.Email = u.Email
	stored.FirstName = u.FirstName
	stored.LastName = u.LastName
	r.users[u.ID] = stored

	return &stored, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}
