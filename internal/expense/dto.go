package expense

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID      *string            `json:"group_id,omitempty"`
	PaidBy       string             `json:"paid_by" validate:"required"`
	Amount       float64            `json:"amount" validate:"required,gt=0"`
	Participants []string           `json:"participants" validate:"required,min=1"`
	Description  string             `json:"description" validate:"required,min=1,max=255"`
	SplitMethod  string             `json:"split_method,omitempty" validate:"omitempty,oneof=EQUAL CUSTOM"`
	SplitAmounts map[string]float64 `json:"split_amounts,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID           string             `json:"id"`
	GroupID      *string            `json:"group_id,omitempty"`
	PaidBy       string             `json:"paid_by"`
	Amount       float64            `json:"amount"`
	Participants []string           `json:"participants"`
	Description  string             `json:"description"`
	SplitMethod  string             `json:"split_method,omitempty"`
	SplitAmounts map[string]float64 `json:"split_amounts,omitempty"`
	CreatedAt    string             `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:           e.ID,
		GroupID:      e.GroupID,
		PaidBy:       e.PaidBy,
		Amount:       e.Amount,
		Participants: e.Participants,
		Description:  e.Description,
		SplitMethod:  e.SplitMethod,
		SplitAmounts: e.SplitAmounts,
		CreatedAt:    e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
