package report

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fkhayef/splitreport/internal/expense"
	"github.com/fkhayef/splitreport/internal/expense/split"
	"github.com/fkhayef/splitreport/internal/group"
)

func newTestEngine() *Engine {
	return NewEngine(split.NewFactory())
}

func groupID(id string) *string { return &id }

func assertBalance(t *testing.T, ledger map[string]float64, name string, want float64) {
	t.Helper()
	got, ok := ledger[name]
	if !ok {
		t.Fatalf("ledger has no entry for %q: %v", name, ledger)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("balance for %q = %v, want %v", name, got, want)
	}
}

func TestSubjectPaidIndividualExpense(t *testing.T) {
	// alice (u1) paid $30 split equally among u1, u2, u3.
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "u1", Amount: 30, Participants: []string{"u1", "u2", "u3"}, Description: "dinner"},
	}

	individual, groups, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	if len(individual) != 2 {
		t.Fatalf("individual ledger has %d entries, want 2: %v", len(individual), individual)
	}
	assertBalance(t, individual, "bob", 10)
	assertBalance(t, individual, "carol", 10)

	if len(groups) != 0 {
		t.Errorf("group ledger should be empty, got %v", groups)
	}
}

func TestSubjectOwesGroupExpense(t *testing.T) {
	// u2 (bob) paid $90 in group Trip, split 3 ways; subject u1 owes bob 30.
	groups := []*group.Group{
		{ID: "g1", Name: "Trip", Members: []string{"u1", "u2", "u3"}},
	}
	expenses := []*expense.Expense{
		{ID: "e1", GroupID: groupID("g1"), PaidBy: "u2", Amount: 90, Participants: []string{"u1", "u2", "u3"}},
	}

	individual, groupBalances, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), groups)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	trip, ok := groupBalances["Trip"]
	if !ok {
		t.Fatalf("no ledger for group Trip: %v", groupBalances)
	}
	assertBalance(t, trip, "bob", -30)
	assertBalance(t, trip, "carol", 0)

	if _, ok := trip["alice"]; ok {
		t.Error("subject must never appear in their own ledger")
	}
	if len(individual) != 0 {
		t.Errorf("individual ledger should be empty, got %v", individual)
	}
}

func TestGroupZeroSeeding(t *testing.T) {
	groups := []*group.Group{
		{ID: "g1", Name: "Flat", Members: []string{"u1", "u2", "u3"}},
	}

	_, groupBalances, err := newTestEngine().ComputeBalances("u1", nil, testRoster(), groups)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	flat := groupBalances["Flat"]
	if len(flat) != 2 {
		t.Fatalf("seeded ledger has %d entries, want 2: %v", len(flat), flat)
	}
	assertBalance(t, flat, "bob", 0)
	assertBalance(t, flat, "carol", 0)
}

func TestCrossKeyMerging(t *testing.T) {
	// Two expenses reference bob by id and by email; both must land on one
	// ledger entry.
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "u1", Amount: 20, Participants: []string{"u1", "u2"}},
		{ID: "e2", PaidBy: "u1", Amount: 30, Participants: []string{"alice@example.com", "bob@example.com"}},
	}

	individual, _, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	if len(individual) != 1 {
		t.Fatalf("individual ledger has %d entries, want 1: %v", len(individual), individual)
	}
	assertBalance(t, individual, "bob", 25)
}

func TestUnknownPayerBecomesPseudoIdentity(t *testing.T) {
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "unknown@x.com", Amount: 40, Participants: []string{"unknown@x.com", "u1"}},
	}

	individual, _, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	assertBalance(t, individual, "unknown@x.com", -20)
}

func TestSubjectNotInvolvedExpenseIgnored(t *testing.T) {
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "u2", Amount: 50, Participants: []string{"u2", "u3"}},
	}

	individual, _, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	if len(individual) != 0 {
		t.Errorf("individual ledger should be empty, got %v", individual)
	}
}

func TestConservation(t *testing.T) {
	// Subject paid but is not a participant: the full amount is owed back.
	expenses := []*expense.Expense{
		{ID: "e1", PaidBy: "u1", Amount: 30, Participants: []string{"u2", "u3"}},
	}

	individual, _, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	var sum float64
	for _, v := range individual {
		sum += v
	}
	if math.Abs(sum-30) > 1e-9 {
		t.Errorf("ledger entries sum to %v, want 30", sum)
	}
}

func TestUnknownGroupFallsBackToIndividualLedger(t *testing.T) {
	expenses := []*expense.Expense{
		{ID: "e1", GroupID: groupID("missing"), PaidBy: "u1", Amount: 10, Participants: []string{"u1", "u2"}},
	}

	individual, groupBalances, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	assertBalance(t, individual, "bob", 5)
	if _, ok := groupBalances["missing"]; ok {
		t.Error("unknown group id must be dropped from group output")
	}
}

func TestCustomSplitShares(t *testing.T) {
	expenses := []*expense.Expense{
		{
			ID:           "e1",
			PaidBy:       "u1",
			Amount:       30,
			Participants: []string{"u1", "u2"},
			SplitMethod:  "CUSTOM",
			SplitAmounts: map[string]float64{"u1": 10, "u2": 20},
		},
	}

	individual, _, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	assertBalance(t, individual, "bob", 20)
}

func TestInvalidCustomSplitFallsBackToEqual(t *testing.T) {
	// Amounts do not sum to the total; the engine degrades to an equal split
	// instead of failing the report.
	expenses := []*expense.Expense{
		{
			ID:           "e1",
			PaidBy:       "u1",
			Amount:       30,
			Participants: []string{"u1", "u2"},
			SplitMethod:  "CUSTOM",
			SplitAmounts: map[string]float64{"u1": 1, "u2": 1},
		},
	}

	individual, _, err := newTestEngine().ComputeBalances("u1", expenses, testRoster(), nil)
	if err != nil {
		t.Fatalf("ComputeBalances() error: %v", err)
	}

	assertBalance(t, individual, "bob", 15)
}

func TestSubjectNotFound(t *testing.T) {
	_, _, err := newTestEngine().ComputeBalances("ghost", nil, testRoster(), nil)
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("ComputeBalances() error = %v, want ErrSubjectNotFound", err)
	}

	// The error enumerates known ids for operator diagnosis.
	for _, id := range []string{"u1", "u2", "u3"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("error %q does not mention known id %q", err.Error(), id)
		}
	}
}
