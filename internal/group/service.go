package group

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrNoMembers     = errors.New("group must have at least one member")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new group. Member references are stored as given; they are
// not required to match registered users (unregistered members simply resolve
// to their raw reference in reports).
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	if len(req.Members) == 0 {
		return nil, ErrNoMembers
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a group by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Group, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	return group, nil
}

// List retrieves all groups
func (s *Service) List(ctx context.Context) ([]*Group, error) {
	return s.repo.List(ctx)
}
