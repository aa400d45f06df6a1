package report

import "github.com/fkhayef/splitreport/internal/expense"

// ReportResponse represents the balance report for a subject user
type ReportResponse struct {
	SubjectID          string                        `json:"subject_id"`
	SubjectName        string                        `json:"subject_name"`
	Expenses           []*expense.ExpenseResponse    `json:"expenses"`
	IndividualBalances map[string]float64            `json:"individual_balances"`
	GroupBalances      map[string]map[string]float64 `json:"group_balances"`
}

// ToResponse converts a Report to a ReportResponse DTO
func (r *Report) ToResponse() *ReportResponse {
	expenses := make([]*expense.ExpenseResponse, len(r.Expenses))
	for i, exp := range r.Expenses {
		expenses[i] = exp.ToResponse()
	}

	return &ReportResponse{
		SubjectID:          r.SubjectID,
		SubjectName:        r.SubjectName,
		Expenses:           expenses,
		IndividualBalances: r.IndividualBalances,
		GroupBalances:      r.GroupBalances,
	}
}
