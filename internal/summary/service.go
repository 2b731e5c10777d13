package summary

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/bill"
	"github.com/rudrap/splitmate/internal/friend"
	"github.com/rudrap/splitmate/internal/ledger"
	"github.com/rudrap/splitmate/internal/money"
)

// Common errors
var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year is required")
)

// Service derives read-only aggregates over the ledger and registries
type Service struct {
	friends *friend.Repository
	bills   *bill.Repository
	ledger  *ledger.Ledger
}

// NewService creates a new summary service with dependencies injected
func NewService(friends *friend.Repository, bills *bill.Repository, l *ledger.Ledger) *Service {
	return &Service{friends: friends, bills: bills, ledger: l}
}

// Overall returns group-wide totals: the sum of positive balances, the
// absolute sum of negative balances, and the sum of all bill amounts.
func (s *Service) Overall(ctx context.Context) *SummaryResponse {
	totalOwed := decimal.Zero
	totalOwing := decimal.Zero
	for _, e := range s.ledger.Snapshot() {
		switch {
		case e.Balance.Sign() > 0:
			totalOwed = totalOwed.Add(e.Balance)
		case e.Balance.Sign() < 0:
			totalOwing = totalOwing.Add(e.Balance.Abs())
		}
	}

	return &SummaryResponse{
		TotalOwed:     money.Round2(totalOwed).InexactFloat64(),
		TotalOwing:    money.Round2(totalOwing).InexactFloat64(),
		TotalExpenses: money.Round2(s.bills.TotalAmount(ctx)).InexactFloat64(),
		FriendsCount:  s.friends.Count(ctx),
		BillsCount:    s.bills.Count(ctx),
	}
}

// Monthly returns totals for bills dated within the given month.
func (s *Service) Monthly(ctx context.Context, year, month int) (*MonthlySummaryResponse, error) {
	if year < 1 {
		return nil, ErrInvalidYear
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	bills := s.bills.ListByMonth(ctx, year, time.Month(month))

	total := decimal.Zero
	out := make([]*bill.BillResponse, len(bills))
	for i, b := range bills {
		total = total.Add(b.Amount)
		out[i] = b.ToResponse()
	}

	avg := decimal.Zero
	if len(bills) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(bills))))
	}

	return &MonthlySummaryResponse{
		Year:          year,
		Month:         month,
		TotalExpenses: money.Round2(total).InexactFloat64(),
		BillsCount:    len(bills),
		AvgBillAmount: money.Round2(avg).InexactFloat64(),
		Bills:         out,
	}, nil
}
