package settlement

import (
	"context"
	"fmt"

	"github.com/rudrap/splitmate/internal/friend"
	"github.com/rudrap/splitmate/internal/ledger"
	"github.com/rudrap/splitmate/internal/money"
)

// Service exposes the settlement engine over the friend registry and ledger
type Service struct {
	friends  *friend.Repository
	ledger   *ledger.Ledger
	currency string
}

// NewService creates a new settlement service with dependencies injected
func NewService(friends *friend.Repository, l *ledger.Ledger, currency string) *Service {
	return &Service{friends: friends, ledger: l, currency: currency}
}

// Suggestions computes the minimal transfer list that would zero out all
// balances. It reads balances without mutating them.
func (s *Service) Suggestions(ctx context.Context) []*SuggestionResponse {
	friends := s.friends.List(ctx)
	parties := make([]ledger.PartyBalance, len(friends))
	for i, f := range friends {
		parties[i] = ledger.PartyBalance{
			ID:      f.ID,
			Name:    f.Name,
			Balance: s.ledger.Balance(f.ID),
		}
	}

	suggestions := ledger.SuggestSettlements(parties)
	out := make([]*SuggestionResponse, len(suggestions))
	for i, sg := range suggestions {
		out[i] = &SuggestionResponse{
			FromID: sg.FromID,
			From:   sg.From,
			ToID:   sg.ToID,
			To:     sg.To,
			Amount: sg.Amount.InexactFloat64(),
			Message: fmt.Sprintf("%s pays %s %s",
				sg.From, sg.To, money.Format(s.currency, sg.Amount)),
		}
	}
	return out
}

// SettleUp discharges one debtor against available creditors, forcing their
// balance to zero. Settling a friend with a zero or positive balance is a
// no-op.
func (s *Service) SettleUp(ctx context.Context, friendID string) error {
	if !s.friends.Exists(ctx, friendID) {
		return friend.ErrFriendNotFound
	}
	return s.ledger.SettleOne(friendID)
}
