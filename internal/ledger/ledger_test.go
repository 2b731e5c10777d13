package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func balancesOf(l *Ledger) map[string]string {
	out := make(map[string]string)
	for _, e := range l.Snapshot() {
		out[e.ID] = e.Balance.StringFixed(2)
	}
	return out
}

func TestApplyBillCreditsPayerAndDebitsParticipants(t *testing.T) {
	l := New()
	l.AddParty("a")
	l.AddParty("b")

	err := l.ApplyBill(Charge{Amount: dec("100"), PaidBy: "a", Participants: []string{"a", "b"}})
	require.NoError(t, err)

	assert.Equal(t, "50.00", l.Balance("a").StringFixed(2))
	assert.Equal(t, "-50.00", l.Balance("b").StringFixed(2))
}

func TestReverseBillRestoresExactBalances(t *testing.T) {
	l := New()
	for _, id := range []string{"a", "b", "c"} {
		l.AddParty(id)
	}

	// Uneven division: share is 33.333..., deltas round to 66.67 / -33.33.
	charge := Charge{Amount: dec("100"), PaidBy: "a", Participants: []string{"a", "b", "c"}}
	require.NoError(t, l.ApplyBill(charge))

	assert.Equal(t, "66.67", l.Balance("a").StringFixed(2))
	assert.Equal(t, "-33.33", l.Balance("b").StringFixed(2))
	assert.Equal(t, "-33.33", l.Balance("c").StringFixed(2))

	require.NoError(t, l.ReverseBill(charge))
	for _, e := range l.Snapshot() {
		assert.True(t, e.Balance.IsZero(), "party %s should be back to zero", e.ID)
	}
}

func TestApplyBillPayerParticipantExclusivity(t *testing.T) {
	l := New()
	l.AddParty("a")
	l.AddParty("b")

	// The payer listed as a participant takes only the credit branch;
	// no additional debit is applied on top.
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("60"), PaidBy: "a", Participants: []string{"a", "b"}}))
	assert.Equal(t, "30.00", l.Balance("a").StringFixed(2))
	assert.Equal(t, "-30.00", l.Balance("b").StringFixed(2))
}

func TestApplyBillRejectsEmptyParticipants(t *testing.T) {
	l := New()
	l.AddParty("a")

	err := l.ApplyBill(Charge{Amount: dec("10"), PaidBy: "a"})
	assert.ErrorIs(t, err, ErrNoParticipants)
	assert.True(t, l.Balance("a").IsZero())
}

func TestBalanceConservation(t *testing.T) {
	l := New()
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		l.AddParty(id)
	}

	charges := []Charge{
		{Amount: dec("100"), PaidBy: "a", Participants: []string{"a", "b"}},
		{Amount: dec("75.50"), PaidBy: "b", Participants: []string{"a", "b", "c"}},
		{Amount: dec("10"), PaidBy: "c", Participants: []string{"a", "b", "c", "d"}},
		{Amount: dec("33.33"), PaidBy: "d", Participants: []string{"c", "d"}},
	}

	epsilon := dec("0.01")
	sum := func() decimal.Decimal {
		total := decimal.Zero
		for _, e := range l.Snapshot() {
			total = total.Add(e.Balance)
		}
		return total
	}

	for _, c := range charges {
		require.NoError(t, l.ApplyBill(c))
		assert.True(t, sum().Abs().LessThanOrEqual(epsilon), "sum drifted to %s", sum())
	}
	for _, c := range charges {
		require.NoError(t, l.ReverseBill(c))
		assert.True(t, sum().Abs().LessThanOrEqual(epsilon), "sum drifted to %s", sum())
	}
	for _, e := range l.Snapshot() {
		assert.True(t, e.Balance.IsZero(), "party %s ended at %s", e.ID, e.Balance)
	}
}

func TestRemovePartyKeepsOtherBalances(t *testing.T) {
	l := New()
	l.AddParty("a")
	l.AddParty("b")
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("100"), PaidBy: "a", Participants: []string{"a", "b"}}))

	require.NoError(t, l.RemoveParty("b"))

	assert.Equal(t, map[string]string{"a": "50.00"}, balancesOf(l))
	assert.ErrorIs(t, l.RemoveParty("b"), ErrPartyNotFound)
}

func TestSettleOneDrainsCreditorsInInsertionOrder(t *testing.T) {
	l := New()
	for _, id := range []string{"first", "second", "debtor", "other"} {
		l.AddParty(id)
	}
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("60"), PaidBy: "first", Participants: []string{"first", "debtor"}}))
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("60"), PaidBy: "second", Participants: []string{"second", "other"}}))

	// debtor owes 30; the first-registered creditor covers it all and the
	// second is left untouched.
	require.NoError(t, l.SettleOne("debtor"))

	assert.Equal(t, map[string]string{
		"first":  "0.00",
		"second": "30.00",
		"debtor": "0.00",
		"other":  "-30.00",
	}, balancesOf(l))
}

func TestSettleOnePartialCreditorDrain(t *testing.T) {
	l := New()
	for _, id := range []string{"creditor", "debtor", "other"} {
		l.AddParty(id)
	}
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("100"), PaidBy: "creditor", Participants: []string{"creditor", "debtor"}}))
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("40"), PaidBy: "debtor", Participants: []string{"debtor", "other"}}))

	// debtor: -50 + 20 = -30; creditor: +50; other: -20.
	require.NoError(t, l.SettleOne("debtor"))

	assert.Equal(t, map[string]string{
		"creditor": "20.00",
		"debtor":   "0.00",
		"other":    "-20.00",
	}, balancesOf(l))
}

func TestSettleOneShortfallIsDischarged(t *testing.T) {
	l := New()
	for _, id := range []string{"creditor", "debtor", "leaver"} {
		l.AddParty(id)
	}
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("50"), PaidBy: "creditor", Participants: []string{"creditor", "debtor"}}))
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("30"), PaidBy: "leaver", Participants: []string{"leaver", "debtor"}}))

	// Removing the second creditor leaves 25 of credit against 40 of debt.
	require.NoError(t, l.RemoveParty("leaver"))
	require.NoError(t, l.SettleOne("debtor"))

	// The 15 shortfall is silently discharged, not carried over.
	assert.Equal(t, map[string]string{
		"creditor": "0.00",
		"debtor":   "0.00",
	}, balancesOf(l))
}

func TestSettleOneIsNoOpForNonDebtors(t *testing.T) {
	l := New()
	l.AddParty("a")
	l.AddParty("b")
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("100"), PaidBy: "a", Participants: []string{"a", "b"}}))

	before := balancesOf(l)
	require.NoError(t, l.SettleOne("a")) // positive balance
	assert.Equal(t, before, balancesOf(l))

	require.NoError(t, l.SettleOne("b"))
	require.NoError(t, l.SettleOne("b")) // already settled
	assert.Equal(t, "0.00", l.Balance("b").StringFixed(2))

	assert.ErrorIs(t, l.SettleOne("nobody"), ErrPartyNotFound)
}

func TestAddPartyIsIdempotent(t *testing.T) {
	l := New()
	l.AddParty("a")
	l.AddParty("b")
	require.NoError(t, l.ApplyBill(Charge{Amount: dec("100"), PaidBy: "a", Participants: []string{"a", "b"}}))

	l.AddParty("a")
	assert.Equal(t, "50.00", l.Balance("a").StringFixed(2))
	assert.Len(t, l.Snapshot(), 2)
}
