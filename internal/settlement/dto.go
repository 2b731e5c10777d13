package settlement

// SuggestionResponse is one proposed payment from a debtor to a creditor.
// Suggestions are derived from current balances and never persisted.
type SuggestionResponse struct {
	FromID  string  `json:"from_id"`
	From    string  `json:"from"`
	ToID    string  `json:"to_id"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}
