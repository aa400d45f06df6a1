package reminder

// CreateReminderRequest represents the request to create a reminder
type CreateReminderRequest struct {
	ExpenseID string `json:"expense_id" validate:"required"`
	ToRef     string `json:"to_ref" validate:"required"`
	SentBy    string `json:"sent_by,omitempty"`
	Message   string `json:"message,omitempty" validate:"omitempty,max=500"`
}

// ReminderResponse represents the response for a reminder
type ReminderResponse struct {
	ID        string `json:"id"`
	ExpenseID string `json:"expense_id"`
	ToRef     string `json:"to_ref"`
	SentBy    string `json:"sent_by,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Reminder model to a ReminderResponse DTO
func (r *Reminder) ToResponse() *ReminderResponse {
	return &ReminderResponse{
		ID:        r.ID,
		ExpenseID: r.ExpenseID,
		ToRef:     r.ToRef,
		SentBy:    r.SentBy,
		Message:   r.Message,
		CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
