package friend

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository holds friend records in memory, preserving registration order.
// All access is serialized by the mutex; persistence is out of scope.
type Repository struct {
	mu      sync.RWMutex
	friends map[string]*Friend
	order   []string
}

// NewRepository creates an empty friend repository.
func NewRepository() *Repository {
	return &Repository{friends: make(map[string]*Friend)}
}

// Create inserts a new friend and assigns its ID.
func (r *Repository) Create(ctx context.Context, name string) *Friend {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := &Friend{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	r.friends[f.ID] = f
	r.order = append(r.order, f.ID)
	return f
}

// GetByID retrieves a friend by ID, or nil if unknown.
func (r *Repository) GetByID(ctx context.Context, id string) *Friend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.friends[id]
}

// GetByName retrieves a friend by name, matched case-insensitively.
func (r *Repository) GetByName(ctx context.Context, name string) *Friend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.friends {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// Exists reports whether a friend with the given ID is registered.
func (r *Repository) Exists(ctx context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.friends[id]
	return ok
}

// List returns all friends in registration order.
func (r *Repository) List(ctx context.Context) []*Friend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Friend, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.friends[id])
	}
	return out
}

// Count returns the number of registered friends.
func (r *Repository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.friends)
}

// Delete removes a friend record. It reports whether the friend existed.
func (r *Repository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.friends[id]; !ok {
		return false
	}
	delete(r.friends, id)
	for i, fid := range r.order {
		if fid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}
