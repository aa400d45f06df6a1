package reminder

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles reminder data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new reminder repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reminder into the database
func (r *Repository) Create(ctx context.Context, expenseID, toRef, sentBy, message string) (*Reminder, error) {
	query := `
		INSERT INTO reminders (expense_id, to_ref, sent_by, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, expense_id, to_ref, sent_by, message, created_at
	`

	reminder := &Reminder{}
	err := r.db.QueryRowContext(ctx, query, expenseID, toRef, sentBy, message).Scan(
		&reminder.ID,
		&reminder.ExpenseID,
		&reminder.ToRef,
		&reminder.SentBy,
		&reminder.Message,
		&reminder.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminder, nil
}

// ListByRecipient retrieves all reminders addressed to a reference
func (r *Repository) ListByRecipient(ctx context.Context, toRef string) ([]*Reminder, error) {
	query := `
		SELECT id, expense_id, to_ref, sent_by, message, created_at
		FROM reminders
		WHERE to_ref = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, toRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*Reminder
	for rows.Next() {
		reminder := &Reminder{}
		if err := rows.Scan(
			&reminder.ID,
			&reminder.ExpenseID,
			&reminder.ToRef,
			&reminder.SentBy,
			&reminder.Message,
			&reminder.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}
