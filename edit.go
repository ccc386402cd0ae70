package vec

// SplitAt divides the vector into the items before the index and the
// items at or after it, so that left.Append(right) reconstructs the
// input. Indexes past the end produce (v, empty). An index of zero or
// below always produces (empty, v): unlike SliceFrom and SliceUntil,
// SplitAt does not treat negative indexes as offsets from the end,
// and callers that want an end-relative split must compute the
// positive index themselves.
func (v Vector[T]) SplitAt(index int) (Vector[T], Vector[T]) {
	if index <= 0 {
		return Vector[T]{}, v
	}
	return v.SliceUntil(index), v.SliceFrom(index)
}

// InsertAt returns a vector one item longer, with val at the provided
// index and the items previously at or after it shifted up by one.
// Insertion points run from 0 through Len() inclusive; for any other
// index the vector is returned unchanged.
func (v Vector[T]) InsertAt(index int, val T) Vector[T] {
	if index < 0 || index > len(v.items) {
		return v
	}
	out := make([]T, 0, len(v.items)+1)
	out = append(out, v.items[:index]...)
	out = append(out, val)
	out = append(out, v.items[index:]...)
	return Vector[T]{items: out}
}

// RemoveAt returns a vector with the item at the provided index
// excised and the later items shifted down by one. Out-of-range
// indexes return the vector unchanged.
func (v Vector[T]) RemoveAt(index int) Vector[T] {
	if index < 0 || index >= len(v.items) {
		return v
	}
	out := make([]T, 0, len(v.items)-1)
	out = append(out, v.items[:index]...)
	out = append(out, v.items[index+1:]...)
	return Vector[T]{items: out}
}
