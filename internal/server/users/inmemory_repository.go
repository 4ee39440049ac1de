package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository keeps accounts in a map keyed by username. It backs
// the dev mode (empty DSN) and the unit tests. The mutex gives it the
// same atomic check-and-insert guarantee the database's unique index
// provides.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]*User)}
}

func (r *InMemoryRepository) Exists(ctx context.Context, userName string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userName]
	return ok, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorUsernameTaken
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	stored := *user
	r.users[user.UserName] = &stored

	return user, nil
}

func (r *InMemoryRepository) FindByUsername(ctx context.Context, userName string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *user
	return &found, nil
}

// Count reports the number of stored accounts. Test helper.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.users)
}
