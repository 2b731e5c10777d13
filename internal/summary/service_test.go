package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudrap/splitmate/internal/bill"
	"github.com/rudrap/splitmate/internal/friend"
	"github.com/rudrap/splitmate/internal/ledger"
)

func newTestStack(t *testing.T) (*Service, *bill.Service, map[string]string) {
	t.Helper()

	l := ledger.New()
	friends := friend.NewRepository()
	billRepo := bill.NewRepository()
	billService := bill.NewService(billRepo, l, friends)

	ids := make(map[string]string)
	for _, name := range []string{"Alice", "Bob"} {
		f := friends.Create(context.Background(), name)
		l.AddParty(f.ID)
		ids[name] = f.ID
	}
	return NewService(friends, billRepo, l), billService, ids
}

func TestOverallSummary(t *testing.T) {
	s, bills, ids := newTestStack(t)

	_, err := bills.Create(context.Background(), &bill.CreateBillRequest{
		Description:  "Dinner",
		Amount:       100,
		PaidBy:       ids["Alice"],
		Participants: []string{ids["Alice"], ids["Bob"]},
		Category:     "Food",
	})
	require.NoError(t, err)

	got := s.Overall(context.Background())
	assert.Equal(t, 50.0, got.TotalOwed)
	assert.Equal(t, 50.0, got.TotalOwing)
	assert.Equal(t, 100.0, got.TotalExpenses)
	assert.Equal(t, 2, got.FriendsCount)
	assert.Equal(t, 1, got.BillsCount)
}

func TestOverallSummaryEmpty(t *testing.T) {
	s, _, _ := newTestStack(t)

	got := s.Overall(context.Background())
	assert.Equal(t, 0.0, got.TotalOwed)
	assert.Equal(t, 0.0, got.TotalOwing)
	assert.Equal(t, 0.0, got.TotalExpenses)
	assert.Equal(t, 0, got.BillsCount)
}

func TestMonthlySummary(t *testing.T) {
	s, bills, ids := newTestStack(t)

	for _, amount := range []float64{100, 50} {
		_, err := bills.Create(context.Background(), &bill.CreateBillRequest{
			Description:  "Groceries",
			Amount:       amount,
			PaidBy:       ids["Alice"],
			Participants: []string{ids["Alice"], ids["Bob"]},
			Category:     "Shopping",
		})
		require.NoError(t, err)
	}

	now := time.Now().UTC()
	got, err := s.Monthly(context.Background(), now.Year(), int(now.Month()))
	require.NoError(t, err)

	assert.Equal(t, 150.0, got.TotalExpenses)
	assert.Equal(t, 2, got.BillsCount)
	assert.Equal(t, 75.0, got.AvgBillAmount)
	assert.Len(t, got.Bills, 2)

	// A month with no bills reports zeroes.
	other := now.AddDate(0, -1, 0)
	empty, err := s.Monthly(context.Background(), other.Year(), int(other.Month()))
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.TotalExpenses)
	assert.Equal(t, 0, empty.BillsCount)
	assert.Equal(t, 0.0, empty.AvgBillAmount)
}

func TestMonthlySummaryValidation(t *testing.T) {
	s, _, _ := newTestStack(t)

	_, err := s.Monthly(context.Background(), 2026, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = s.Monthly(context.Background(), 2026, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = s.Monthly(context.Background(), 0, 6)
	assert.ErrorIs(t, err, ErrInvalidYear)
}
