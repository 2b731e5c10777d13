package bill

import (
	"github.com/rudrap/splitmate/internal/ledger"
	"github.com/rudrap/splitmate/internal/money"
)

// CreateBillRequest represents the request to record a bill
type CreateBillRequest struct {
	Description  string   `json:"description" validate:"required,min=1,max=255"`
	Amount       float64  `json:"amount" validate:"required,gt=0,lte=999999"`
	PaidBy       string   `json:"paid_by" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1"`
	Category     string   `json:"category" validate:"required"`
}

// BillResponse represents the response for a bill
type BillResponse struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	Amount         float64  `json:"amount"`
	PaidBy         string   `json:"paid_by"`
	Participants   []string `json:"participants"`
	Category       string   `json:"category"`
	Date           string   `json:"date"`
	SharePerPerson float64  `json:"share_per_person"`
	CreatedAt      string   `json:"created_at"`
}

// ToResponse converts a Bill model to a BillResponse DTO
func (b *Bill) ToResponse() *BillResponse {
	return &BillResponse{
		ID:             b.ID,
		Description:    b.Description,
		Amount:         money.Round2(b.Amount).InexactFloat64(),
		PaidBy:         b.PaidBy,
		Participants:   b.Participants,
		Category:       string(b.Category),
		Date:           b.Date.Format("2006-01-02"),
		SharePerPerson: ledger.EqualShare(b.Amount, len(b.Participants)).InexactFloat64(),
		CreatedAt:      b.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
