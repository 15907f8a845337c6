package index

import (
	"strconv"
	"strings"

	"github.com/tk-it/personcomplete/pkg/person"
)

// IDIndex matches queries that are exactly a person id.
type IDIndex struct {
	ids []int
}

// NewIDIndex builds the id index over persons in order.
func NewIDIndex(persons []person.Person) *IDIndex {
	ids := make([]int, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
	}
	return &IDIndex{ids: ids}
}

// Find returns the first person at or after from with the queried id.
// Queries that are not integers never match.
func (x *IDIndex) Find(query string, from int) int {
	id, ok := ParseID(query)
	if !ok {
		return NoMatch
	}
	for i := max(from, 0); i < len(x.ids); i++ {
		if x.ids[i] == id {
			return i
		}
	}
	return NoMatch
}

// ParseID parses an id typed into a field, ignoring surrounding blanks.
func ParseID(s string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return id, true
}
