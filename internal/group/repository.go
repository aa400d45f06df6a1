package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	query := `
		INSERT INTO groups (name, members, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, name, members, created_by, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, req.Name, pq.Array(req.Members), req.CreatedBy).Scan(
		&group.ID,
		&group.Name,
		pq.Array(&group.Members),
		&group.CreatedBy,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT id, name, members, created_by, created_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		pq.Array(&group.Members),
		&group.CreatedBy,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// List retrieves all groups
func (r *Repository) List(ctx context.Context) ([]*Group, error) {
	query := `
		SELECT id, name, members, created_by, created_at
		FROM groups
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			pq.Array(&group.Members),
			&group.CreatedBy,
			&group.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// ListByMember retrieves all groups whose member list contains any of the
// given references
func (r *Repository) ListByMember(ctx context.Context, refs []string) ([]*Group, error) {
	query := `
		SELECT id, name, members, created_by, created_at
		FROM groups
		WHERE members && $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(refs))
	if err != nil {
		return nil, fmt.Errorf("failed to list groups by member: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			pq.Array(&group.Members),
			&group.CreatedBy,
			&group.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}
