package index

// Combine merges two indexes over the same ordering. When both match the
// earlier position wins; when one misses the other's answer is used.
func Combine(f1, f2 Index) Index {
	return Func(func(query string, from int) int {
		i1 := f1.Find(query, from)
		i2 := f2.Find(query, from)
		if i1 == NoMatch || i2 == NoMatch {
			return max(i1, i2)
		}
		return min(i1, i2)
	})
}
