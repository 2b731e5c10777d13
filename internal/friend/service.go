package friend

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/rudrap/splitmate/internal/bill"
	"github.com/rudrap/splitmate/internal/ledger"
)

// Common errors
var (
	ErrFriendNotFound = errors.New("friend not found")
	ErrNameTooShort   = errors.New("name must be at least 2 characters")
	ErrNameTooLong    = errors.New("name must be at most 30 characters")
	ErrNameTaken      = errors.New("a friend with this name already exists")
)

// Service handles friend business logic
type Service struct {
	repo   *Repository
	ledger *ledger.Ledger
	bills  *bill.Repository
}

// NewService creates a new friend service with dependencies injected
func NewService(repo *Repository, l *ledger.Ledger, bills *bill.Repository) *Service {
	return &Service{repo: repo, ledger: l, bills: bills}
}

// Create registers a new friend with a zero balance. The name is trimmed,
// must be 2-30 characters long, and must be unique case-insensitively.
// Validation failures leave all state untouched.
func (s *Service) Create(ctx context.Context, req *CreateFriendRequest) (*Friend, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, ErrNameTooShort
	}
	if utf8.RuneCountInString(name) > 30 {
		return nil, ErrNameTooLong
	}
	if existing := s.repo.GetByName(ctx, name); existing != nil {
		return nil, ErrNameTaken
	}

	f := s.repo.Create(ctx, name)
	s.ledger.AddParty(f.ID)
	return f, nil
}

// GetByID retrieves a friend by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Friend, error) {
	f := s.repo.GetByID(ctx, id)
	if f == nil {
		return nil, ErrFriendNotFound
	}
	return f, nil
}

// List retrieves all friends in registration order
func (s *Service) List(ctx context.Context) []*Friend {
	return s.repo.List(ctx)
}

// Delete removes a friend. Their balance record is dropped without
// rebalancing anyone else, the friend is removed from every bill's
// participant set, and bills left with no participants are deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !s.repo.Delete(ctx, id) {
		return ErrFriendNotFound
	}
	if err := s.ledger.RemoveParty(id); err != nil && !errors.Is(err, ledger.ErrPartyNotFound) {
		return err
	}
	s.bills.RemoveParticipant(ctx, id)
	return nil
}

// Bills lists every bill the friend paid for or participates in.
func (s *Service) Bills(ctx context.Context, id string) ([]*bill.Bill, error) {
	if !s.repo.Exists(ctx, id) {
		return nil, ErrFriendNotFound
	}
	return s.bills.ListByFriend(ctx, id), nil
}

// Ledger exposes the balance ledger for response assembly.
func (s *Service) Ledger() *ledger.Ledger {
	return s.ledger
}
