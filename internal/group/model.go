package group

import "time"

// Group represents a group of people sharing expenses.
// Members holds raw references as stored upstream: each entry may be a
// canonical user id or an email, and may not match any known user at all.
// Resolution to a single identity happens in the report core, not here.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
