package expense

import "time"

// Expense represents a shared expense.
// PaidBy and Participants hold raw references as stored upstream: a canonical
// user id, an email, or a username, possibly matching no known user. The
// report core resolves them; nothing here does.
type Expense struct {
	ID           string             `json:"id"`
	GroupID      *string            `json:"group_id,omitempty"`
	PaidBy       string             `json:"paid_by"`
	Amount       float64            `json:"amount"`
	Participants []string           `json:"participants"`
	Description  string             `json:"description"`
	SplitMethod  string             `json:"split_method,omitempty"`
	SplitAmounts map[string]float64 `json:"split_amounts,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// IsGroupExpense reports whether the expense is tied to a group
func (e *Expense) IsGroupExpense() bool {
	return e.GroupID != nil && *e.GroupID != ""
}
