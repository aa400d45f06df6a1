package user

import "time"

// User represents a user in the system.
// ID is the canonical identifier; expenses and groups may reference a user by
// id, email or username interchangeably.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// displayUsername picks a non-empty display name for a user record.
// Fallback order: username column, legacy name column, email, canonical id.
// Guarantees every loaded User has a display name even when the upstream
// record is incomplete.
func displayUsername(id, username, name, email string) string {
	if username != "" {
		return username
	}
	if name != "" {
		return name
	}
	if email != "" {
		return email
	}
	return id
}
