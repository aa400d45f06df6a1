package report

import (
	"context"
	"log/slog"

	"github.com/fkhayef/splitreport/internal/expense"
	"github.com/fkhayef/splitreport/internal/group"
	"github.com/fkhayef/splitreport/internal/user"
)

// UserSource supplies the full user roster
type UserSource interface {
	List(ctx context.Context) ([]*user.User, error)
}

// GroupSource supplies all groups
type GroupSource interface {
	List(ctx context.Context) ([]*group.Group, error)
}

// ExpenseSource supplies expenses involving any of the given references
type ExpenseSource interface {
	ListInvolving(ctx context.Context, refs []string) ([]*expense.Expense, error)
}

// Report is the assembled balance report for one subject user
type Report struct {
	SubjectID          string
	SubjectName        string
	Expenses           []*expense.Expense
	IndividualBalances map[string]float64
	GroupBalances      map[string]map[string]float64
}

// Service assembles balance reports from the data sources
type Service struct {
	users    UserSource
	groups   GroupSource
	expenses ExpenseSource
	engine   *Engine
	logger   *slog.Logger
}

// NewService creates a new report service with dependencies injected
func NewService(users UserSource, groups GroupSource, expenses ExpenseSource, engine *Engine) *Service {
	return &Service{
		users:    users,
		groups:   groups,
		expenses: expenses,
		engine:   engine,
		logger:   slog.Default(),
	}
}

// BuildReport fetches the roster, groups and the subject's expenses, then
// runs the balance engine. groupID, when non-empty, filters the expense list
// in the report; balances always cover everything, matching how the upstream
// document renders a group section against full totals.
//
// Identity conflicts and unresolved references are logged as warnings, never
// raised: dirty data must not stop a report.
func (s *Service) BuildReport(ctx context.Context, subjectID, groupID string) (*Report, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		s.logger.Info("user roster is empty", "subject_id", subjectID)
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}

	idx := NewIndex(users)
	for _, conflict := range idx.Conflicts() {
		s.logger.Warn("identity conflict", "detail", conflict)
	}

	expenses, err := s.expenses.ListInvolving(ctx, idx.Aliases(subjectID))
	if err != nil {
		return nil, err
	}

	individual, groupBalances, err := s.engine.ComputeBalances(subjectID, expenses, users, groups)
	if err != nil {
		return nil, err
	}

	s.logUnresolved(idx, expenses, groups)

	return &Report{
		SubjectID:          subjectID,
		SubjectName:        idx.ResolveDisplayName(subjectID),
		Expenses:           filterByGroup(expenses, groupID),
		IndividualBalances: individual,
		GroupBalances:      groupBalances,
	}, nil
}

// logUnresolved warns once per reference that matched no roster identity
func (s *Service) logUnresolved(idx *Index, expenses []*expense.Expense, groups []*group.Group) {
	seen := make(map[string]bool)
	unresolved := func(ref, kind string) {
		if ref == "" || seen[ref] || idx.IsKnown(ref) {
			return
		}
		seen[ref] = true
		s.logger.Warn("unresolved reference, using raw value", "ref", ref, "kind", kind)
	}

	for _, exp := range expenses {
		unresolved(exp.PaidBy, "paid_by")
		for _, p := range exp.Participants {
			unresolved(p, "participant")
		}
	}
	for _, g := range groups {
		for _, m := range g.Members {
			unresolved(m, "group_member")
		}
	}
}

func filterByGroup(expenses []*expense.Expense, groupID string) []*expense.Expense {
	if groupID == "" {
		return expenses
	}
	filtered := make([]*expense.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if exp.IsGroupExpense() && *exp.GroupID == groupID {
			filtered = append(filtered, exp)
		}
	}
	return filtered
}
