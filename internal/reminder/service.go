package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fkhayef/splitreport/internal/expense"
)

// Common errors
var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrNotParticipant   = errors.New("recipient must be a participant in the expense")
	ErrRecipientMissing = errors.New("recipient reference is required")
)

// Service handles reminder business logic. There is no delivery transport;
// a created reminder is stored and logged, as the upstream system does.
type Service struct {
	repo        *Repository
	expenseRepo *expense.Repository
	logger      *slog.Logger
}

// NewService creates a new reminder service
func NewService(repo *Repository, expenseRepo *expense.Repository) *Service {
	return &Service{
		repo:        repo,
		expenseRepo: expenseRepo,
		logger:      slog.Default(),
	}
}

// Create records a reminder for one participant of an expense
func (s *Service) Create(ctx context.Context, req *CreateReminderRequest) (*Reminder, error) {
	if req.ToRef == "" {
		return nil, ErrRecipientMissing
	}

	exp, err := s.expenseRepo.GetByID(ctx, req.ExpenseID)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, ErrExpenseNotFound
	}

	if !isParticipant(exp, req.ToRef) {
		return nil, ErrNotParticipant
	}

	message := req.Message
	if message == "" {
		message = fmt.Sprintf("Reminder: you have an outstanding share of %.2f for %q", exp.Amount, exp.Description)
	}

	reminder, err := s.repo.Create(ctx, req.ExpenseID, req.ToRef, req.SentBy, message)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reminder sent", "expense_id", req.ExpenseID, "to", req.ToRef)

	return reminder, nil
}

// ListByRecipient retrieves all reminders addressed to a reference
func (s *Service) ListByRecipient(ctx context.Context, toRef string) ([]*Reminder, error) {
	return s.repo.ListByRecipient(ctx, toRef)
}

func isParticipant(exp *expense.Expense, ref string) bool {
	for _, p := range exp.Participants {
		if p == ref {
			return true
		}
	}
	return false
}
