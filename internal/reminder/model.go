package reminder

import "time"

// Reminder represents a payment reminder sent to one participant of an
// expense. ToRef is a raw reference (id or email), stored as given.
type Reminder struct {
	ID        string    `json:"id"`
	ExpenseID string    `json:"expense_id"`
	ToRef     string    `json:"to_ref"`
	SentBy    string    `json:"sent_by"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
