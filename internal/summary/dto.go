package summary

import "github.com/rudrap/splitmate/internal/bill"

// SummaryResponse aggregates current ledger and registry state
type SummaryResponse struct {
	TotalOwed     float64 `json:"total_owed"`
	TotalOwing    float64 `json:"total_owing"`
	TotalExpenses float64 `json:"total_expenses"`
	FriendsCount  int     `json:"friends_count"`
	BillsCount    int     `json:"bills_count"`
}

// MonthlySummaryResponse aggregates bills dated within one calendar month
type MonthlySummaryResponse struct {
	Year          int                  `json:"year"`
	Month         int                  `json:"month"`
	TotalExpenses float64              `json:"total_expenses"`
	BillsCount    int                  `json:"bills_count"`
	AvgBillAmount float64              `json:"avg_bill_amount"`
	Bills         []*bill.BillResponse `json:"bills"`
}
