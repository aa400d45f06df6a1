package group

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	Members   []string `json:"members" validate:"required,min=1"`
	CreatedBy string   `json:"created_by,omitempty"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Members   []string `json:"members"`
	CreatedBy string   `json:"created_by,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Members:   g.Members,
		CreatedBy: g.CreatedBy,
		CreatedAt: g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
