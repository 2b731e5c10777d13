package bill

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/ledger"
)

// Category labels what a bill was spent on
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryEntertainment  Category = "Entertainment"
	CategoryTransportation Category = "Transportation"
	CategoryUtilities      Category = "Utilities"
	CategoryShopping       Category = "Shopping"
	CategoryOther          Category = "Other"
)

// Categories lists every valid bill category.
var Categories = []Category{
	CategoryFood,
	CategoryEntertainment,
	CategoryTransportation,
	CategoryUtilities,
	CategoryShopping,
	CategoryOther,
}

// Valid reports whether the category is one of the known labels.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Bill represents a single recorded expense, paid by one friend and split
// equally among its participants.
type Bill struct {
	ID           string
	Description  string
	Amount       decimal.Decimal
	PaidBy       string
	Participants []string
	Category     Category
	Date         time.Time
	CreatedAt    time.Time
}

// Charge converts the bill to the ledger's minimal view for balance
// mutation.
func (b *Bill) Charge() ledger.Charge {
	return ledger.Charge{
		Amount:       b.Amount,
		PaidBy:       b.PaidBy,
		Participants: b.Participants,
	}
}

// HasParticipant reports whether the friend is in the participant set.
func (b *Bill) HasParticipant(id string) bool {
	for _, p := range b.Participants {
		if p == id {
			return true
		}
	}
	return false
}
