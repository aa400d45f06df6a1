package expense

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new expense into the database
func (r *Repository) Create(ctx context.Context, req *CreateExpenseRequest) (*Expense, error) {
	var splitAmounts []byte
	if len(req.SplitAmounts) > 0 {
		var err error
		splitAmounts, err = json.Marshal(req.SplitAmounts)
		if err != nil {
			return nil, fmt.Errorf("failed to encode split amounts: %w", err)
		}
	}

	query := `
		INSERT INTO expenses (group_id, paid_by, amount, participants, description, split_method, split_amounts)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, group_id, paid_by, amount, participants, description, split_method, split_amounts, created_at
	`

	expense, err := scanExpense(r.db.QueryRowContext(ctx, query,
		req.GroupID,
		req.PaidBy,
		req.Amount,
		pq.Array(req.Participants),
		req.Description,
		req.SplitMethod,
		splitAmounts,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT id, group_id, paid_by, amount, participants, description, split_method, split_amounts, created_at
		FROM expenses
		WHERE id = $1
	`

	expense, err := scanExpense(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// ListInvolving retrieves all expenses where any of the given references
// appears as a participant or as the payer. The references are the subject's
// known aliases (id, email, username); matching on all of them catches
// records that stored the reference inconsistently.
func (r *Repository) ListInvolving(ctx context.Context, refs []string) ([]*Expense, error) {
	query := `
		SELECT id, group_id, paid_by, amount, participants, description, split_method, split_amounts, created_at
		FROM expenses
		WHERE participants && $1 OR paid_by = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(refs))
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

// List retrieves all expenses
func (r *Repository) List(ctx context.Context) ([]*Expense, error) {
	query := `
		SELECT id, group_id, paid_by, amount, participants, description, split_method, split_amounts, created_at
		FROM expenses
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanExpense
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(s scanner) (*Expense, error) {
	var (
		expense      Expense
		groupID      sql.NullString
		splitMethod  sql.NullString
		splitAmounts []byte
	)

	if err := s.Scan(
		&expense.ID,
		&groupID,
		&expense.PaidBy,
		&expense.Amount,
		pq.Array(&expense.Participants),
		&expense.Description,
		&splitMethod,
		&splitAmounts,
		&expense.CreatedAt,
	); err != nil {
		return nil, err
	}

	if groupID.Valid {
		expense.GroupID = &groupID.String
	}
	expense.SplitMethod = splitMethod.String
	if len(splitAmounts) > 0 {
		if err := json.Unmarshal(splitAmounts, &expense.SplitAmounts); err != nil {
			return nil, fmt.Errorf("failed to decode split amounts: %w", err)
		}
	}

	return &expense, nil
}
