package friend

import "time"

// Friend represents a party who can owe or be owed money. The running net
// balance lives in the ledger, keyed by the friend's ID; this record only
// carries identity.
type Friend struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
