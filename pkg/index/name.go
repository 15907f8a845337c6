package index

import (
	"fmt"
	"strings"

	"github.com/tk-it/personcomplete/pkg/person"
)

// skipTokens replaces each space of a name query so that any run of whole
// tokens may sit between the query's words.
var skipTokens = fmt.Sprintf(" ([^%c ]+ )*", Sentinel)

// NameIndex matches case-insensitive name queries where middle names may be
// left out, so "carl dahl" finds "Carl Berg Dahl".
type NameIndex struct {
	names *Pattern
}

// NewNameIndex builds the name index over persons in order.
func NewNameIndex(persons []person.Person) (*NameIndex, error) {
	names := make([]string, len(persons))
	for i, p := range persons {
		names[i] = strings.ToLower(p.Name)
	}
	pattern, err := NewPattern(names)
	if err != nil {
		return nil, fmt.Errorf("name index: %w", err)
	}
	return &NameIndex{names: pattern}, nil
}

// Find returns the first person at or after from whose name matches query.
func (n *NameIndex) Find(query string, from int) int {
	return n.names.Find(NamePattern(query), from)
}

// NamePattern is the regular expression a name query is rewritten to.
func NamePattern(query string) string {
	return strings.ReplaceAll(strings.ToLower(query), " ", skipTokens)
}
