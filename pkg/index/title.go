package index

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/tk-it/personcomplete/pkg/person"
)

// committeePrefix marks committee functions, which are also found by their
// bare name without the year.
const committeePrefix = "FU"

// TitleIndex matches role codes with a two digit year suffix, like "form19",
// and committee names, like "kontakt" for "FUkontakt".
type TitleIndex struct {
	keyPerson   []int // owner of each key
	personStart []int
	// lowered key -> ascending key offsets
	trie *patricia.Trie
}

// NewTitleIndex builds the title index over persons in order.
func NewTitleIndex(persons []person.Person) *TitleIndex {
	x := &TitleIndex{
		personStart: make([]int, len(persons)),
		trie:        patricia.NewTrie(),
	}
	for i, p := range persons {
		x.personStart[i] = len(x.keyPerson)
		for _, t := range p.Titles {
			x.add(t.Title+t.PeriodSuffix(), i)
			if strings.HasPrefix(t.Title, committeePrefix) {
				x.add(t.Title[len(committeePrefix):], i)
			}
		}
	}
	log.Debugf("Title index: %d keys for %d persons", len(x.keyPerson), len(persons))
	return x
}

func (x *TitleIndex) add(key string, owner int) {
	key = strings.ToLower(key)
	offset := len(x.keyPerson)
	x.keyPerson = append(x.keyPerson, owner)
	if key == "" {
		return
	}

	prefix := patricia.Prefix(key)
	if item := x.trie.Get(prefix); item != nil {
		x.trie.Set(prefix, append(item.([]int), offset))
		return
	}
	x.trie.Insert(prefix, []int{offset})
}

// Find returns the owner of the first key at or after person from that equals
// query, ignoring case.
func (x *TitleIndex) Find(query string, from int) int {
	if query == "" {
		return NoMatch
	}
	start := 0
	if from > 0 {
		if from >= len(x.personStart) {
			return NoMatch
		}
		start = x.personStart[from]
	}

	item := x.trie.Get(patricia.Prefix(strings.ToLower(query)))
	if item == nil {
		return NoMatch
	}
	offsets := item.([]int)
	k := sort.SearchInts(offsets, start)
	if k == len(offsets) {
		return NoMatch
	}
	return x.keyPerson[offsets[k]]
}

// Keys returns the number of searchable keys.
func (x *TitleIndex) Keys() int {
	return len(x.keyPerson)
}
