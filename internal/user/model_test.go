package user

import "testing"

func TestDisplayUsername(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		username string
		legacy   string
		email    string
		want     string
	}{
		{
			name:     "username wins when present",
			id:       "u1",
			username: "alice",
			legacy:   "Alice Smith",
			email:    "alice@example.com",
			want:     "alice",
		},
		{
			name:   "legacy name column used when username missing",
			id:     "u1",
			legacy: "Alice Smith",
			email:  "alice@example.com",
			want:   "Alice Smith",
		},
		{
			name:  "email used when both name fields missing",
			id:    "u1",
			email: "alice@example.com",
			want:  "alice@example.com",
		},
		{
			name: "canonical id is the last resort",
			id:   "u1",
			want: "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayUsername(tt.id, tt.username, tt.legacy, tt.email)
			if got != tt.want {
				t.Errorf("displayUsername() = %q, want %q", got, tt.want)
			}
		})
	}
}
