package friend

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rudrap/splitmate/internal/money"
)

// CreateFriendRequest represents the request body for registering a friend
type CreateFriendRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
}

// FriendResponse represents the response for a single friend
type FriendResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Avatar    string  `json:"avatar"`
	Balance   float64 `json:"balance"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Friend model plus their current balance to a
// FriendResponse DTO. Positive balance means the group owes this friend.
func (f *Friend) ToResponse(balance decimal.Decimal) *FriendResponse {
	avatar := ""
	if runes := []rune(f.Name); len(runes) > 0 {
		avatar = strings.ToUpper(string(runes[0]))
	}
	return &FriendResponse{
		ID:        f.ID,
		Name:      f.Name,
		Avatar:    avatar,
		Balance:   money.Round2(balance).InexactFloat64(),
		CreatedAt: f.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
