package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fkhayef/splitreport/internal/expense"
	"github.com/fkhayef/splitreport/internal/expense/split"
	"github.com/fkhayef/splitreport/internal/group"
	"github.com/fkhayef/splitreport/internal/user"
)

// ErrSubjectNotFound is returned when the subject user id is absent from the
// roster. This is the only fatal condition in a balance computation; every
// other anomaly degrades to a raw-reference fallback.
var ErrSubjectNotFound = errors.New("subject not found")

// Engine computes balance ledgers for a subject user. It is stateless across
// invocations; each ComputeBalances call builds its own identity index and
// accumulators.
type Engine struct {
	splitFactory *split.Factory
}

// NewEngine creates a new balance engine with the split factory injected
func NewEngine(splitFactory *split.Factory) *Engine {
	return &Engine{splitFactory: splitFactory}
}

// ComputeBalances aggregates the subject's net position against every
// counterparty. It returns an individual ledger and a per-group ledger, both
// keyed by display name. Positive amounts are owed to the subject, negative
// amounts are owed by the subject.
//
// Group ledgers are pre-seeded with zero entries for every member except the
// subject, so a group with no relevant expenses still reports all members at
// zero. Group output is keyed by group name; ledger keys never include the
// subject. Amounts are plain float64 sums with no internal rounding.
func (e *Engine) ComputeBalances(
	subjectID string,
	expenses []*expense.Expense,
	users []*user.User,
	groups []*group.Group,
) (map[string]float64, map[string]map[string]float64, error) {
	idx := NewIndex(users)

	if !idx.HasID(subjectID) {
		return nil, nil, fmt.Errorf("%w: %q is not in the roster (known ids: %s)",
			ErrSubjectNotFound, subjectID, strings.Join(idx.KnownIDs(), ", "))
	}

	individual := make(map[string]float64)

	// Ledgers are keyed by group id while accumulating; the output is keyed
	// by group name.
	groupLedgers := make(map[string]map[string]float64, len(groups))
	for _, g := range groups {
		ledger := make(map[string]float64, len(g.Members))
		for _, member := range g.Members {
			if idx.ResolveID(member) == subjectID {
				continue
			}
			ledger[idx.ResolveDisplayName(member)] = 0
		}
		groupLedgers[g.ID] = ledger
	}

	for _, exp := range expenses {
		shares := e.shares(exp)

		payerID := idx.ResolveID(exp.PaidBy)
		payerName := idx.ResolveDisplayName(exp.PaidBy)

		// A group expense whose group id is unknown falls back to the
		// individual ledger.
		target := individual
		if exp.IsGroupExpense() {
			if ledger, ok := groupLedgers[*exp.GroupID]; ok {
				target = ledger
			}
		}

		if payerID == subjectID {
			// Subject paid: every other participant owes their share.
			for _, p := range exp.Participants {
				if idx.ResolveID(p) == subjectID {
					continue
				}
				target[idx.ResolveDisplayName(p)] += shares[p]
			}
			continue
		}

		// Subject did not pay: if they participated, they owe the payer
		// their own share.
		for _, p := range exp.Participants {
			if idx.ResolveID(p) == subjectID {
				target[payerName] -= shares[p]
				break
			}
		}
	}

	groupBalances := make(map[string]map[string]float64, len(groups))
	for _, g := range groups {
		groupBalances[g.Name] = groupLedgers[g.ID]
	}

	return individual, groupBalances, nil
}

// shares computes the per-participant share map for one expense. Invalid or
// missing custom amounts degrade to an equal split rather than failing, so a
// report always completes.
func (e *Engine) shares(exp *expense.Expense) map[string]float64 {
	strategy, err := e.splitFactory.CreateFromString(exp.SplitMethod)
	if err != nil {
		strategy = &split.EqualStrategy{}
	}

	shares, err := strategy.Calculate(exp.Amount, exp.Participants, exp.SplitAmounts)
	if err != nil && strategy.Method() != split.MethodEqual {
		shares, err = (&split.EqualStrategy{}).Calculate(exp.Amount, exp.Participants, nil)
	}
	if err != nil {
		// No participants or a negative amount; nothing to attribute.
		return nil
	}

	return shares
}
