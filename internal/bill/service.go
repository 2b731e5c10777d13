package bill

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/ledger"
	"github.com/rudrap/splitmate/internal/money"
)

// Common errors
var (
	ErrBillNotFound       = errors.New("bill not found")
	ErrEmptyDescription   = errors.New("description is required")
	ErrInvalidAmount      = errors.New("amount must be greater than 0")
	ErrAmountTooLarge     = errors.New("amount is too large")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrNoParticipants     = errors.New("at least one participant is required")
	ErrUnknownPayer       = errors.New("payer is not a registered friend")
	ErrUnknownParticipant = errors.New("participant is not a registered friend")
	ErrPayerNotIncluded   = errors.New("payer must be included in participants")
)

// PartyDirectory answers whether a party id belongs to a registered friend.
// Implemented by the friend repository; declared here to keep the dependency
// one-directional.
type PartyDirectory interface {
	Exists(ctx context.Context, id string) bool
}

// Service handles bill business logic
type Service struct {
	repo    *Repository
	ledger  *ledger.Ledger
	parties PartyDirectory
}

// NewService creates a new bill service with dependencies injected
func NewService(repo *Repository, l *ledger.Ledger, parties PartyDirectory) *Service {
	return &Service{repo: repo, ledger: l, parties: parties}
}

// Create validates and records a bill, then applies its balance deltas.
// All validation happens before any state changes, so a rejected bill never
// partially applies.
func (s *Service) Create(ctx context.Context, req *CreateBillRequest) (*Bill, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	amount := decimal.NewFromFloat(req.Amount)
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(money.MaxBillAmount) {
		return nil, ErrAmountTooLarge
	}

	category := Category(req.Category)
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	participants := dedupe(req.Participants)
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	for _, id := range participants {
		if !s.parties.Exists(ctx, id) {
			return nil, ErrUnknownParticipant
		}
	}

	if req.PaidBy == "" || !s.parties.Exists(ctx, req.PaidBy) {
		return nil, ErrUnknownPayer
	}
	// Requiring the payer in the participant set keeps the sum of deltas at
	// zero; a payer outside the set would be credited the full amount.
	if !contains(participants, req.PaidBy) {
		return nil, ErrPayerNotIncluded
	}

	b := s.repo.Create(ctx, &Bill{
		Description:  description,
		Amount:       amount,
		PaidBy:       req.PaidBy,
		Participants: participants,
		Category:     category,
	})

	if err := s.ledger.ApplyBill(b.Charge()); err != nil {
		s.repo.Delete(ctx, b.ID)
		return nil, err
	}
	return b, nil
}

// GetByID retrieves a bill by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Bill, error) {
	b := s.repo.GetByID(ctx, id)
	if b == nil {
		return nil, ErrBillNotFound
	}
	return b, nil
}

// List retrieves all bills in creation order
func (s *Service) List(ctx context.Context) []*Bill {
	return s.repo.List(ctx)
}

// Delete reverses a bill's balance deltas and removes the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	b := s.repo.GetByID(ctx, id)
	if b == nil {
		return ErrBillNotFound
	}

	if err := s.ledger.ReverseBill(b.Charge()); err != nil {
		return err
	}
	s.repo.Delete(ctx, id)
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
