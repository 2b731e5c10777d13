package bill

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository holds bill records in memory, preserving creation order.
type Repository struct {
	mu    sync.RWMutex
	bills map[string]*Bill
	order []string
}

// NewRepository creates an empty bill repository.
func NewRepository() *Repository {
	return &Repository{bills: make(map[string]*Bill)}
}

// Create inserts a new bill, assigning its ID and the current date.
func (r *Repository) Create(ctx context.Context, b *Bill) *Bill {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Date = now.Truncate(24 * time.Hour)
	b.CreatedAt = now

	r.bills[b.ID] = b
	r.order = append(r.order, b.ID)
	return b
}

// GetByID retrieves a bill by ID, or nil if unknown.
func (r *Repository) GetByID(ctx context.Context, id string) *Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.bills[id]
}

// List returns all bills in creation order.
func (r *Repository) List(ctx context.Context) []*Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Bill, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bills[id])
	}
	return out
}

// ListByFriend returns bills the friend paid for or participates in.
func (r *Repository) ListByFriend(ctx context.Context, friendID string) []*Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Bill
	for _, id := range r.order {
		b := r.bills[id]
		if b.PaidBy == friendID || b.HasParticipant(friendID) {
			out = append(out, b)
		}
	}
	return out
}

// ListByMonth returns bills dated within the given calendar month.
func (r *Repository) ListByMonth(ctx context.Context, year int, month time.Month) []*Bill {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Bill
	for _, id := range r.order {
		b := r.bills[id]
		if b.Date.Year() == year && b.Date.Month() == month {
			out = append(out, b)
		}
	}
	return out
}

// Count returns the number of recorded bills.
func (r *Repository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bills)
}

// TotalAmount returns the sum of all bill amounts.
func (r *Repository) TotalAmount(ctx context.Context) decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := decimal.Zero
	for _, b := range r.bills {
		total = total.Add(b.Amount)
	}
	return total
}

// Delete removes a bill record. It reports whether the bill existed.
func (r *Repository) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteLocked(id)
}

func (r *Repository) deleteLocked(id string) bool {
	if _, ok := r.bills[id]; !ok {
		return false
	}
	delete(r.bills, id)
	for i, bid := range r.order {
		if bid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveParticipant drops the friend from every bill's participant set and
// deletes bills left with no participants. Already-applied balances are not
// adjusted. It returns how many bills were updated and how many removed.
func (r *Repository) RemoveParticipant(ctx context.Context, friendID string) (updated, removed int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var emptied []string
	for _, id := range r.order {
		b := r.bills[id]
		if !b.HasParticipant(friendID) {
			continue
		}
		kept := make([]string, 0, len(b.Participants)-1)
		for _, p := range b.Participants {
			if p != friendID {
				kept = append(kept, p)
			}
		}
		b.Participants = kept
		if len(kept) == 0 {
			emptied = append(emptied, id)
		} else {
			updated++
		}
	}

	for _, id := range emptied {
		if r.deleteLocked(id) {
			removed++
		}
	}
	return updated, removed
}
