package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/money"
)

// EqualShare returns the rounded per-person share for an equal split.
func EqualShare(amount decimal.Decimal, participantCount int) decimal.Decimal {
	if participantCount == 0 {
		return decimal.Zero
	}
	return money.Round2(amount.Div(decimal.NewFromInt(int64(participantCount))))
}

// EqualSplit computes the signed balance delta each participant receives for
// an equally split bill. The payer is credited amount-share for fronting
// everyone else's share; every other participant owes -share. Deltas are
// rounded; the division itself is not.
//
// Callers must reject empty participant sets before invoking this; an empty
// set here is a programming error, not bad user input.
func EqualSplit(amount decimal.Decimal, participants []string, paidBy string) (map[string]decimal.Decimal, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	share := amount.Div(decimal.NewFromInt(int64(len(participants))))
	deltas := make(map[string]decimal.Decimal, len(participants))
	for _, id := range participants {
		if id == paidBy {
			deltas[id] = money.Round2(amount.Sub(share))
		} else {
			deltas[id] = money.Round2(share.Neg())
		}
	}
	return deltas, nil
}
