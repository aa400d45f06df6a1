package report

import (
	"testing"

	"github.com/fkhayef/splitreport/internal/user"
)

func strPtr(s string) *string { return &s }

func testRoster() []*user.User {
	return []*user.User{
		{ID: "u1", Username: "alice", Email: strPtr("alice@example.com")},
		{ID: "u2", Username: "bob", Email: strPtr("bob@example.com")},
		{ID: "u3", Username: "carol"},
	}
}

func TestResolveID(t *testing.T) {
	ix := NewIndex(testRoster())

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"canonical id resolves to itself", "u1", "u1"},
		{"email resolves to id", "bob@example.com", "u2"},
		{"username resolves to id", "carol", "u3"},
		{"unknown ref returned unchanged", "nobody@example.com", "nobody@example.com"},
		{"empty ref returned unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.ResolveID(tt.ref); got != tt.want {
				t.Errorf("ResolveID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveIDIdempotence(t *testing.T) {
	ix := NewIndex(testRoster())

	for _, ref := range []string{"u1", "alice@example.com", "carol", "ghost"} {
		once := ix.ResolveID(ref)
		if twice := ix.ResolveID(once); twice != once {
			t.Errorf("ResolveID not idempotent for %q: %q != %q", ref, once, twice)
		}
	}
}

func TestResolveDisplayName(t *testing.T) {
	ix := NewIndex(testRoster())

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"id resolves to username", "u1", "alice"},
		{"email resolves to username", "bob@example.com", "bob"},
		{"username resolves to itself", "carol", "carol"},
		{"unknown ref falls back to raw value", "mystery@example.com", "mystery@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.ResolveDisplayName(tt.ref); got != tt.want {
				t.Errorf("ResolveDisplayName(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolutionTotality(t *testing.T) {
	// Resolution must return something for any input, even over an empty
	// roster.
	ix := NewIndex(nil)

	for _, ref := range []string{"u1", "someone@example.com", ""} {
		if got := ix.ResolveID(ref); got != ref {
			t.Errorf("ResolveID(%q) over empty roster = %q, want the ref back", ref, got)
		}
		if got := ix.ResolveDisplayName(ref); got != ref {
			t.Errorf("ResolveDisplayName(%q) over empty roster = %q, want the ref back", ref, got)
		}
	}
}

func TestDuplicateIdentitiesLastWins(t *testing.T) {
	roster := []*user.User{
		{ID: "u1", Username: "alex", Email: strPtr("shared@example.com")},
		{ID: "u2", Username: "alex", Email: strPtr("shared@example.com")},
	}
	ix := NewIndex(roster)

	if got := ix.ResolveID("shared@example.com"); got != "u2" {
		t.Errorf("ResolveID(shared email) = %q, want later user u2", got)
	}
	if got := ix.ResolveID("alex"); got != "u2" {
		t.Errorf("ResolveID(shared username) = %q, want later user u2", got)
	}

	// One conflict per duplicated key.
	if got := len(ix.Conflicts()); got != 2 {
		t.Errorf("Conflicts() returned %d entries, want 2: %v", got, ix.Conflicts())
	}
}

func TestAliases(t *testing.T) {
	ix := NewIndex(testRoster())

	aliases := ix.Aliases("u1")
	want := map[string]bool{"u1": true, "alice@example.com": true, "alice": true}
	if len(aliases) != len(want) {
		t.Fatalf("Aliases(u1) = %v, want %d entries", aliases, len(want))
	}
	for _, a := range aliases {
		if !want[a] {
			t.Errorf("Aliases(u1) contains unexpected %q", a)
		}
	}

	// No email: only id and username.
	if got := len(ix.Aliases("u3")); got != 2 {
		t.Errorf("Aliases(u3) has %d entries, want 2", got)
	}
}
