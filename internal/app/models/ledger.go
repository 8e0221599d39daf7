package models

import "time"

// Transaction is one append-only points ledger entry. Entries are never
// mutated or deleted after creation. The running balance is not stored
// here; it is implied by User.Points, which the same store update mutates.
type Transaction struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Type         TransactionType `json:"type"`
	Amount       int             `json:"amount"` // Always positive; Type carries the sign
	Description  string          `json:"description"`
	Timestamp    time.Time       `json:"timestamp"`
	RelatedBoxID string          `json:"relatedBoxId,omitempty"`
}
