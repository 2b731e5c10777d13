package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/money"
)

// PartyBalance pairs a party's identity with its current balance.
type PartyBalance struct {
	ID      string
	Name    string
	Balance decimal.Decimal
}

// Suggestion is a proposed payment from a debtor to a creditor. Suggestions
// are derived values, never persisted, and applying them does not mutate the
// ledger.
type Suggestion struct {
	FromID string
	From   string
	ToID   string
	To     string
	Amount decimal.Decimal
}

// SuggestSettlements produces a minimal ordered list of payer-to-payee
// transfers that zero out all balances. Creditors are visited in descending
// balance order and debtors in ascending (most negative first); a two-pointer
// merge emits min(credit, debt) transfers and advances past whichever side
// reaches exactly zero. Since total credit equals total debit, at most
// creditors+debtors-1 transfers are produced and every working balance ends
// at zero.
func SuggestSettlements(parties []PartyBalance) []Suggestion {
	var creditors, debtors []PartyBalance
	for _, p := range parties {
		if p.Balance.Sign() > 0 {
			creditors = append(creditors, p)
		} else if p.Balance.Sign() < 0 {
			debtors = append(debtors, p)
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].Balance.GreaterThan(creditors[j].Balance)
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Balance.LessThan(debtors[j].Balance)
	})

	var suggestions []Suggestion
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := money.Min(creditor.Balance, debtor.Balance.Abs())
		suggestions = append(suggestions, Suggestion{
			FromID: debtor.ID,
			From:   debtor.Name,
			ToID:   creditor.ID,
			To:     creditor.Name,
			Amount: amount,
		})

		creditor.Balance = creditor.Balance.Sub(amount)
		debtor.Balance = debtor.Balance.Add(amount)

		if creditor.Balance.IsZero() {
			i++
		}
		if debtor.Balance.IsZero() {
			j++
		}
	}

	return suggestions
}
