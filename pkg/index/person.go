package index

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/tk-it/personcomplete/pkg/person"
)

// PersonIndex is the single query entry point for autocomplete fields. Name
// and id matches compete by position; titles are the fallback channel and
// compete the same way.
type PersonIndex struct {
	persons []person.Person
	byID    map[int]int
	titles  *TitleIndex
	query   Index
}

// NewPersonIndex builds all sub-indexes over a copy of persons.
func NewPersonIndex(persons []person.Person) (*PersonIndex, error) {
	persons = append([]person.Person(nil), persons...)

	names, err := NewNameIndex(persons)
	if err != nil {
		return nil, fmt.Errorf("person index: %w", err)
	}
	titles := NewTitleIndex(persons)

	byID := make(map[int]int, len(persons))
	for i := len(persons) - 1; i >= 0; i-- {
		byID[persons[i].ID] = i
	}

	log.Debugf("Built person index over %d persons", len(persons))
	return &PersonIndex{
		persons: persons,
		byID:    byID,
		titles:  titles,
		query:   Combine(Combine(names, NewIDIndex(persons)), titles),
	}, nil
}

// Find returns the first person at or after from matching query by name, id
// or title.
func (x *PersonIndex) Find(query string, from int) int {
	if len(x.persons) == 0 {
		return NoMatch
	}
	return x.query.Find(query, from)
}

// Len is the number of indexed persons.
func (x *PersonIndex) Len() int {
	return len(x.persons)
}

// Person returns the person at position i.
func (x *PersonIndex) Person(i int) (person.Person, bool) {
	if i < 0 || i >= len(x.persons) {
		return person.Person{}, false
	}
	return x.persons[i], true
}

// ByID returns the person with the given id.
func (x *PersonIndex) ByID(id int) (person.Person, bool) {
	i, ok := x.byID[id]
	if !ok {
		return person.Person{}, false
	}
	return x.persons[i], true
}

// TitleKeys is the number of searchable title keys.
func (x *PersonIndex) TitleKeys() int {
	return x.titles.Keys()
}

// Holder shares the current PersonIndex between readers. Rebuilds swap in a
// new index; the old one stays valid for readers still holding it.
type Holder struct {
	current atomic.Pointer[PersonIndex]
}

// NewHolder returns a holder serving idx.
func NewHolder(idx *PersonIndex) *Holder {
	h := &Holder{}
	h.current.Store(idx)
	return h
}

// Load returns the current index.
func (h *Holder) Load() *PersonIndex {
	return h.current.Load()
}

// Rebuild builds an index over persons and swaps it in. On error the current
// index is kept.
func (h *Holder) Rebuild(persons []person.Person) (*PersonIndex, error) {
	idx, err := NewPersonIndex(persons)
	if err != nil {
		return nil, err
	}
	h.current.Store(idx)
	return idx, nil
}
