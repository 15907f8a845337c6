package index

import (
	"regexp"

	"github.com/charmbracelet/log"
)

// Pattern matches queries as regular expressions anchored at a record start
// by the sentinel. Metacharacters in the query are live.
type Pattern struct {
	buffer
}

// NewPattern builds a regular expression index over values.
func NewPattern(values []string) (*Pattern, error) {
	b, err := newBuffer(values)
	if err != nil {
		return nil, err
	}
	return &Pattern{buffer: b}, nil
}

// Find returns the record holding the leftmost match of sentinel+query at or
// after from. A query that does not compile never matches.
func (p *Pattern) Find(query string, from int) int {
	if query == "" || p.count == 0 {
		return NoMatch
	}
	start, ok := p.offset(from)
	if !ok {
		return NoMatch
	}
	re, err := regexp.Compile(string(Sentinel) + query)
	if err != nil {
		log.Debugf("Ignoring invalid pattern %q: %v", query, err)
		return NoMatch
	}
	loc := re.FindStringIndex(p.haystack[start:])
	if loc == nil {
		return NoMatch
	}
	return (start + loc[0]) / p.width
}
