package index

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSentinel is returned when an indexed value contains the sentinel.
var ErrSentinel = errors.New("value contains the index sentinel")

// buffer is the fixed-width record layout shared by Packed and Pattern.
type buffer struct {
	haystack string
	width    int // fieldLength + 1
	count    int
}

func newBuffer(values []string) (buffer, error) {
	fieldLength := 0
	for i, v := range values {
		if strings.IndexByte(v, Sentinel) >= 0 {
			return buffer{}, fmt.Errorf("%w: value %d %q", ErrSentinel, i, v)
		}
		if len(v) > fieldLength {
			fieldLength = len(v)
		}
	}

	width := fieldLength + 1
	var sb strings.Builder
	sb.Grow(width * len(values))
	for _, v := range values {
		sb.WriteByte(Sentinel)
		sb.WriteString(v)
		for pad := len(v); pad < fieldLength; pad++ {
			sb.WriteByte(Sentinel)
		}
	}
	return buffer{haystack: sb.String(), width: width, count: len(values)}, nil
}

// offset translates a record position into a buffer offset. ok is false when
// from lies past the last record.
func (b buffer) offset(from int) (int, bool) {
	if from <= 0 {
		return 0, true
	}
	if from >= b.count {
		return 0, false
	}
	return from * b.width, true
}

// Len is the number of indexed records.
func (b buffer) Len() int {
	return b.count
}

// Packed matches queries as literal record prefixes.
type Packed struct {
	buffer
}

// NewPacked builds a literal prefix index over values.
func NewPacked(values []string) (*Packed, error) {
	b, err := newBuffer(values)
	if err != nil {
		return nil, err
	}
	return &Packed{buffer: b}, nil
}

// Find returns the first record at or after from whose value starts with
// query.
func (p *Packed) Find(query string, from int) int {
	if query == "" || p.count == 0 {
		return NoMatch
	}
	start, ok := p.offset(from)
	if !ok {
		return NoMatch
	}
	i := strings.Index(p.haystack[start:], string(Sentinel)+query)
	if i < 0 {
		return NoMatch
	}
	return (start + i) / p.width
}
