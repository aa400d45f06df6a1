package user

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles user data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new user repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user into the database
func (r *Repository) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, name, email, created_at
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, req.Username, req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by their canonical ID
func (r *Repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, username, name, email, created_at
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by their email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, username, name, email, created_at
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// List retrieves the full user roster
func (r *Repository) List(ctx context.Context) ([]*User, error) {
	query := `
		SELECT id, username, name, email, created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanUser
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanUser reads a user row, applying the display-name fallback chain so the
// returned User always has a non-empty username.
func scanUser(s scanner) (*User, error) {
	var (
		user     User
		username sql.NullString
		name     sql.NullString
		email    sql.NullString
	)

	if err := s.Scan(&user.ID, &username, &name, &email, &user.CreatedAt); err != nil {
		return nil, err
	}

	user.Username = displayUsername(user.ID, username.String, name.String, email.String)
	if email.Valid {
		user.Email = &email.String
	}

	return &user, nil
}
