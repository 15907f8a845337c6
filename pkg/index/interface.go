/*
Package index answers partial person queries with the position of the first
matching record.

Every index is built once from an ordered sequence and never changes. A query
returns a 0-based position into that sequence, or NoMatch. The optional start
position restricts the answer to positions at or after it; a start of 0 (or
less) searches everything.

Packed and Pattern store their values in a single fixed-width buffer:

	@anna berg@@@@@@carl berg dahl

Each record is the sentinel followed by the value, right-padded with the
sentinel to the longest value. Searching for sentinel+query can only match at
the start of a record, so queries match record prefixes.

NameIndex, IDIndex and TitleIndex are merged with Combine into the PersonIndex
that autocomplete fields query.
*/
package index

// NoMatch is returned when no record at or after the start position matches.
const NoMatch = -1

// Sentinel delimits and pads records in packed buffers. It must not occur in
// indexed values.
const Sentinel = '@'

// Index finds the first record at or after from that matches query.
type Index interface {
	Find(query string, from int) int
}

// Func adapts a plain function to Index.
type Func func(query string, from int) int

// Find calls f(query, from).
func (f Func) Find(query string, from int) int {
	return f(query, from)
}

// Lookup searches idx from the first record.
func Lookup(idx Index, query string) int {
	return idx.Find(query, 0)
}
