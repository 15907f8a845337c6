package index

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tk-it/personcomplete/pkg/person"
)

func roster() []person.Person {
	return []person.Person{
		{ID: 1, Name: "Ann Olsen", Str: "Ann Olsen"},
		{ID: 2, Name: "Ann Berg", Str: "Ann Berg"},
		{ID: 17, Name: "Carl Berg Dahl", Str: "Carl Berg Dahl (FORM)", Titles: []person.Title{{Title: "FORM", Period: 2019}}},
	}
}

func TestPersonIndex(t *testing.T) {
	idx, err := NewPersonIndex(roster())
	require.NoError(t, err)

	testCases := []struct {
		query       string
		expected    int
		description string
	}{
		{"an", 0, "Name prefix, leftmost wins"},
		{"ann b", 1, "First and last name"},
		{"carl dahl", 2, "Middle name skipped"},
		{"17", 2, "Id"},
		{"2", 1, "Id of the second person"},
		{"form19", 2, "Title"},
		{"nobody", NoMatch, "No channel matches"},
		{"", NoMatch, "Empty query"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, Lookup(idx, tc.query))
		})
	}
}

func TestPersonIndexEarliestChannelWins(t *testing.T) {
	persons := []person.Person{
		{ID: 1, Name: "Bo Lund", Titles: []person.Title{{Title: "NF", Period: 2010}}},
		{ID: 2, Name: "Nf10 Hansen"},
	}
	idx, err := NewPersonIndex(persons)
	require.NoError(t, err)

	// name matches position 1, title matches position 0
	assert.Equal(t, 0, Lookup(idx, "nf10"))
	assert.Equal(t, 1, idx.Find("nf10", 1))
}

func TestPersonIndexAccessors(t *testing.T) {
	persons := roster()
	idx, err := NewPersonIndex(persons)
	require.NoError(t, err)

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, 1, idx.TitleKeys())

	p, ok := idx.ByID(17)
	require.True(t, ok)
	assert.Equal(t, "Carl Berg Dahl", p.Name)

	_, ok = idx.ByID(99)
	assert.False(t, ok)

	p, ok = idx.Person(1)
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)

	for _, i := range []int{NoMatch, 3} {
		_, ok = idx.Person(i)
		assert.False(t, ok, "position %d", i)
	}

	persons[0].Name = "Changed"
	p, _ = idx.Person(0)
	assert.Equal(t, "Ann Olsen", p.Name, "index keeps its own copy")
}

func TestPersonIndexEmpty(t *testing.T) {
	idx, err := NewPersonIndex(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, NoMatch, Lookup(idx, "ann"))
	assert.Equal(t, NoMatch, Lookup(idx, "1"))
}

func TestPersonIndexRejectsSentinel(t *testing.T) {
	_, err := NewPersonIndex([]person.Person{{ID: 1, Name: "mail@example.com"}})
	assert.ErrorIs(t, err, ErrSentinel)
}

func TestHolderRebuild(t *testing.T) {
	first, err := NewPersonIndex(roster())
	require.NoError(t, err)
	h := NewHolder(first)

	_, err = h.Rebuild([]person.Person{{ID: 1, Name: "a@b"}})
	require.Error(t, err)
	assert.Same(t, first, h.Load(), "failed rebuild keeps the current index")

	next, err := h.Rebuild([]person.Person{{ID: 99, Name: "Zack Ryder"}})
	require.NoError(t, err)
	assert.Same(t, next, h.Load())
	assert.Equal(t, 0, Lookup(h.Load(), "zack"))
	assert.Equal(t, 0, Lookup(first, "an"), "old index stays usable")
}

func TestHolderConcurrentReaders(t *testing.T) {
	idx, err := NewPersonIndex(roster())
	require.NoError(t, err)
	h := NewHolder(idx)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.Equal(t, 2, Lookup(h.Load(), "17"))
			}
		}()
	}
	for i := 0; i < 20; i++ {
		_, err := h.Rebuild(roster())
		require.NoError(t, err)
	}
	wg.Wait()
}
