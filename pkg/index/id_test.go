package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tk-it/personcomplete/pkg/person"
)

func TestIDIndex(t *testing.T) {
	idx := NewIDIndex([]person.Person{{ID: 5}, {ID: 7}, {ID: 5}})

	testCases := []struct {
		query       string
		from        int
		expected    int
		description string
	}{
		{"5", 0, 0, "First holder"},
		{"5", 1, 2, "From skips the first holder"},
		{" 7 ", 0, 1, "Surrounding blanks"},
		{"7", 2, NoMatch, "Holder before from"},
		{"9", 0, NoMatch, "Unknown id"},
		{"abc", 0, NoMatch, "Not a number"},
		{"5a", 0, NoMatch, "Trailing garbage"},
		{"", 0, NoMatch, "Empty query"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, idx.Find(tc.query, tc.from))
		})
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = ParseID("forty-two")
	assert.False(t, ok)
}
