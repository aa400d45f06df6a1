package report

import (
	"context"
	"errors"
	"testing"

	"github.com/fkhayef/splitreport/internal/expense"
	"github.com/fkhayef/splitreport/internal/expense/split"
	"github.com/fkhayef/splitreport/internal/group"
	"github.com/fkhayef/splitreport/internal/user"
)

type stubUsers struct{ users []*user.User }

func (s *stubUsers) List(ctx context.Context) ([]*user.User, error) { return s.users, nil }

type stubGroups struct{ groups []*group.Group }

func (s *stubGroups) List(ctx context.Context) ([]*group.Group, error) { return s.groups, nil }

type stubExpenses struct {
	expenses []*expense.Expense
	gotRefs  []string
}

func (s *stubExpenses) ListInvolving(ctx context.Context, refs []string) ([]*expense.Expense, error) {
	s.gotRefs = refs
	return s.expenses, nil
}

func newTestService(users []*user.User, groups []*group.Group, expenses []*expense.Expense) (*Service, *stubExpenses) {
	expenseSource := &stubExpenses{expenses: expenses}
	svc := NewService(
		&stubUsers{users: users},
		&stubGroups{groups: groups},
		expenseSource,
		NewEngine(split.NewFactory()),
	)
	return svc, expenseSource
}

func TestBuildReport(t *testing.T) {
	groups := []*group.Group{
		{ID: "g1", Name: "Trip", Members: []string{"u1", "u2", "u3"}},
	}
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "u1", Amount: 30, Participants: []string{"u1", "u2", "u3"}},
		{ID: "e2", GroupID: groupID("g1"), PaidBy: "u2", Amount: 90, Participants: []string{"u1", "u2", "u3"}},
	}

	svc, expenseSource := newTestService(testRoster(), groups, expenses)

	report, err := svc.BuildReport(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("BuildReport() error: %v", err)
	}

	if report.SubjectName != "alice" {
		t.Errorf("SubjectName = %q, want alice", report.SubjectName)
	}
	if len(report.Expenses) != 2 {
		t.Errorf("report has %d expenses, want 2", len(report.Expenses))
	}
	assertBalance(t, report.IndividualBalances, "bob", 10)
	assertBalance(t, report.GroupBalances["Trip"], "bob", -30)

	// The expense fetch must cover all of the subject's aliases so records
	// that stored the reference as an email still match.
	wantRefs := map[string]bool{"u1": true, "alice@example.com": true, "alice": true}
	if len(expenseSource.gotRefs) != len(wantRefs) {
		t.Fatalf("fetched with refs %v, want %d aliases", expenseSource.gotRefs, len(wantRefs))
	}
	for _, ref := range expenseSource.gotRefs {
		if !wantRefs[ref] {
			t.Errorf("fetched with unexpected ref %q", ref)
		}
	}
}

func TestBuildReportGroupFilter(t *testing.T) {
	groups := []*group.Group{
		{ID: "g1", Name: "Trip", Members: []string{"u1", "u2"}},
	}
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "u1", Amount: 30, Participants: []string{"u1", "u2"}},
		{ID: "e2", GroupID: groupID("g1"), PaidBy: "u2", Amount: 20, Participants: []string{"u1", "u2"}},
	}

	svc, _ := newTestService(testRoster(), groups, expenses)

	report, err := svc.BuildReport(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("BuildReport() error: %v", err)
	}

	// Only the group expense survives the filter; balances stay complete.
	if len(report.Expenses) != 1 || report.Expenses[0].ID != "e2" {
		t.Errorf("filtered expenses = %v, want only e2", report.Expenses)
	}
	assertBalance(t, report.IndividualBalances, "bob", 15)
	assertBalance(t, report.GroupBalances["Trip"], "bob", -10)
}

func TestBuildReportSubjectNotFound(t *testing.T) {
	svc, _ := newTestService(testRoster(), nil, nil)

	_, err := svc.BuildReport(context.Background(), "ghost", "")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("BuildReport() error = %v, want ErrSubjectNotFound", err)
	}
}

func TestBuildReportEmptyRoster(t *testing.T) {
	// An empty roster is not an error in itself, but any subject id is then
	// unknown.
	svc, _ := newTestService(nil, nil, nil)

	_, err := svc.BuildReport(context.Background(), "u1", "")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("BuildReport() error = %v, want ErrSubjectNotFound", err)
	}
}
