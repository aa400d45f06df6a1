package report

import (
	"fmt"
	"sort"

	"github.com/fkhayef/splitreport/internal/user"
)

// Index provides lookups between the three ways upstream records reference a
// user: canonical id, email, and username. It is built once per report from
// the full roster and never mutated afterwards.
type Index struct {
	idToUsername map[string]string
	idToEmail    map[string]string
	emailToID    map[string]string
	usernameToID map[string]string
	conflicts    []string
}

// NewIndex builds the identity index from the user roster in one pass.
// Users without an email are simply absent from the email-keyed maps. When two
// users share an email or username the later one wins, and the collision is
// recorded as a diagnostic rather than an error.
func NewIndex(users []*user.User) *Index {
	ix := &Index{
		idToUsername: make(map[string]string, len(users)),
		idToEmail:    make(map[string]string, len(users)),
		emailToID:    make(map[string]string, len(users)),
		usernameToID: make(map[string]string, len(users)),
	}

	for _, u := range users {
		ix.idToUsername[u.ID] = u.Username
		if u.Email != nil && *u.Email != "" {
			email := *u.Email
			if prev, ok := ix.emailToID[email]; ok && prev != u.ID {
				ix.conflicts = append(ix.conflicts,
					fmt.Sprintf("email %q maps to users %s and %s", email, prev, u.ID))
			}
			ix.idToEmail[u.ID] = email
			ix.emailToID[email] = u.ID
		}
		if prev, ok := ix.usernameToID[u.Username]; ok && prev != u.ID {
			ix.conflicts = append(ix.conflicts,
				fmt.Sprintf("username %q maps to users %s and %s", u.Username, prev, u.ID))
		}
		ix.usernameToID[u.Username] = u.ID
	}

	return ix
}

// ResolveID resolves a raw reference to a canonical user id. The reference is
// checked as an id, then an email, then a username; on no match the reference
// is returned unchanged and acts as its own pseudo-identity. Never fails.
func (ix *Index) ResolveID(ref string) string {
	if _, ok := ix.idToUsername[ref]; ok {
		return ref
	}
	if id, ok := ix.emailToID[ref]; ok {
		return id
	}
	if id, ok := ix.usernameToID[ref]; ok {
		return id
	}
	return ref
}

// ResolveDisplayName resolves a raw reference to the username shown in
// ledgers. Falls back through canonical id, known email, and finally the raw
// reference itself. Never fails.
func (ix *Index) ResolveDisplayName(ref string) string {
	id := ix.ResolveID(ref)
	if name, ok := ix.idToUsername[id]; ok {
		return name
	}
	if id, ok := ix.emailToID[ref]; ok {
		if name, ok := ix.idToUsername[id]; ok {
			return name
		}
	}
	return ref
}

// HasID reports whether id is a canonical id present in the roster
func (ix *Index) HasID(id string) bool {
	_, ok := ix.idToUsername[id]
	return ok
}

// IsKnown reports whether a raw reference matches any roster identity
func (ix *Index) IsKnown(ref string) bool {
	return ix.HasID(ix.ResolveID(ref))
}

// Aliases returns every reference form known for a canonical id: the id
// itself, the email if present, and the username. Useful for matching records
// that stored the reference inconsistently.
func (ix *Index) Aliases(id string) []string {
	aliases := []string{id}
	if email, ok := ix.idToEmail[id]; ok {
		aliases = append(aliases, email)
	}
	if name, ok := ix.idToUsername[id]; ok && name != id {
		aliases = append(aliases, name)
	}
	return aliases
}

// KnownIDs returns all canonical ids in the roster, sorted
func (ix *Index) KnownIDs() []string {
	ids := make([]string, 0, len(ix.idToUsername))
	for id := range ix.idToUsername {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Conflicts returns diagnostics for duplicate emails or usernames seen while
// building the index. Last-one-wins resolution already applied; these exist
// so operators can spot the dirty data.
func (ix *Index) Conflicts() []string {
	return ix.conflicts
}
