// Package ledger implements the balance-accounting core: a mutex-guarded
// ledger of per-party net balances, the equal-split calculator, and the
// greedy settlement engine.
package ledger

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/money"
)

// Common errors
var (
	ErrPartyNotFound  = errors.New("party not found")
	ErrNoParticipants = errors.New("at least one participant is required")
)

// Charge is the minimal view of a bill the ledger needs to mutate balances.
type Charge struct {
	Amount       decimal.Decimal
	PaidBy       string
	Participants []string
}

// Entry is one party's balance in insertion order.
type Entry struct {
	ID      string
	Balance decimal.Decimal
}

// Ledger holds each party's current net balance. Positive means the group
// owes the party money, negative means the party owes the group.
//
// All mutation funnels through the methods below; each method is an
// indivisible critical section, so a rejected operation never leaves a
// partially applied delta. Iteration order everywhere is insertion order.
type Ledger struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
	order    []string
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{balances: make(map[string]decimal.Decimal)}
}

// AddParty registers a party with a zero balance. Adding an existing party
// is a no-op.
func (l *Ledger) AddParty(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[id]; ok {
		return
	}
	l.balances[id] = decimal.Zero
	l.order = append(l.order, id)
}

// RemoveParty deletes the party's balance record. Remaining parties are not
// rebalanced: money already attributed through applied bills stays where the
// earlier mutations put it.
func (l *Ledger) RemoveParty(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.balances[id]; !ok {
		return ErrPartyNotFound
	}
	delete(l.balances, id)
	for i, pid := range l.order {
		if pid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Balance returns the party's current balance, or zero if the party is
// unknown.
func (l *Ledger) Balance(id string) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[id]
}

// Snapshot returns every party's balance in insertion order.
func (l *Ledger) Snapshot() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := make([]Entry, len(l.order))
	for i, id := range l.order {
		entries[i] = Entry{ID: id, Balance: l.balances[id]}
	}
	return entries
}

// ApplyBill applies a bill's balance deltas. The payer is credited
// amount-share no matter whether they appear in the participant set; every
// other listed participant is debited their share. The two branches are
// mutually exclusive per party: a payer who is also a participant receives
// only the credit, never an additional debit.
func (l *Ledger) ApplyBill(c Charge) error {
	return l.apply(c, false)
}

// ReverseBill applies the negation of ApplyBill's deltas, restoring every
// affected balance to its exact pre-bill value.
func (l *Ledger) ReverseBill(c Charge) error {
	return l.apply(c, true)
}

func (l *Ledger) apply(c Charge, reverse bool) error {
	if len(c.Participants) == 0 {
		return ErrNoParticipants
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Full-precision division; only the final deltas are rounded.
	share := c.Amount.Div(decimal.NewFromInt(int64(len(c.Participants))))
	credit := money.Round2(c.Amount.Sub(share))
	debit := money.Round2(share)
	if reverse {
		credit = credit.Neg()
		debit = debit.Neg()
	}

	participants := make(map[string]struct{}, len(c.Participants))
	for _, id := range c.Participants {
		participants[id] = struct{}{}
	}

	for _, id := range l.order {
		if id == c.PaidBy {
			l.balances[id] = l.balances[id].Add(credit)
		} else if _, ok := participants[id]; ok {
			l.balances[id] = l.balances[id].Sub(debit)
		}
	}
	return nil
}

// SettleOne discharges one debtor against available creditors. Creditors are
// drained in ledger insertion order until the debt is covered, then the
// debtor's balance is set to exactly zero. If total credit falls short the
// remainder is silently discharged; that simplification is intentional.
// Calling this on a party with a zero or positive balance changes nothing.
func (l *Ledger) SettleOne(debtorID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, ok := l.balances[debtorID]
	if !ok {
		return ErrPartyNotFound
	}
	if balance.Sign() >= 0 {
		return nil
	}

	owed := balance.Abs()
	for _, id := range l.order {
		if id == debtorID {
			continue
		}
		if owed.IsZero() {
			break
		}
		if l.balances[id].Sign() > 0 {
			deduction := money.Min(l.balances[id], owed)
			l.balances[id] = l.balances[id].Sub(deduction)
			owed = owed.Sub(deduction)
		}
	}

	l.balances[debtorID] = decimal.Zero
	return nil
}
