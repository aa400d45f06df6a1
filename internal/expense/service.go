package expense

import (
	"context"
	"errors"

	"github.com/fkhayef/splitreport/internal/expense/split"
)

// Common errors
var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrNoParticipants     = errors.New("at least one participant is required")
	ErrPayerNotOnExpense  = errors.New("paid_by must be one of the participants")
	ErrInvalidSplitMethod = errors.New("invalid split method")
)

// Service handles expense business logic
type Service struct {
	repo         *Repository
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, splitFactory *split.Factory) *Service {
	return &Service{
		repo:         repo,
		splitFactory: splitFactory,
	}
}

// Create validates and stores a new expense. Custom split amounts are
// validated strictly here, at the write path; records that arrive with bad
// amounts through other channels degrade to an equal split at report time
// instead of failing.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(req.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if !contains(req.Participants, req.PaidBy) {
		return nil, ErrPayerNotOnExpense
	}

	strategy, err := s.splitFactory.CreateFromString(req.SplitMethod)
	if err != nil {
		return nil, ErrInvalidSplitMethod
	}
	if err := strategy.Validate(req.Amount, req.Participants, req.SplitAmounts); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves an expense by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

// List retrieves all expenses
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.List(ctx)
}

func contains(refs []string, ref string) bool {
	for _, r := range refs {
		if r == ref {
			return true
		}
	}
	return false
}
