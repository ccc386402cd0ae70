package vec

import "github.com/tychoish/fun/ft"

// SliceFrom drops the first n items. Negative arguments count
// backward from the end: SliceFrom(-k, ...) keeps the final k items
// (the position is length+n, not a clamp). After normalization the
// bounds are clamped, so positions past either end yield the empty
// vector or the whole vector rather than a fault.
func (v Vector[T]) SliceFrom(n int) Vector[T] {
	return v.Slice(ft.IfElse(n < 0, len(v.items)+n, n), len(v.items))
}

// SliceUntil keeps the items before position n, exclusive, under the
// same signed-offset convention as SliceFrom: a negative n resolves
// to length+n.
func (v Vector[T]) SliceUntil(n int) Vector[T] {
	return v.Slice(0, ft.IfElse(n < 0, len(v.items)+n, n))
}

// Pop drops the final item. Popping the empty vector returns the
// empty vector.
func (v Vector[T]) Pop() Vector[T] { return v.SliceUntil(-1) }

// ResizeLeft returns a vector of exactly length n anchored at the
// beginning: longer input keeps only the first n items, shorter input
// gains trailing copies of pad. A non-positive n yields the empty
// vector.
func (v Vector[T]) ResizeLeft(n int, pad T) Vector[T] {
	switch {
	case n <= 0:
		return Vector[T]{}
	case len(v.items) > n:
		return v.Slice(0, n)
	case len(v.items) < n:
		return v.Append(Repeat(n-len(v.items), pad))
	default:
		return v
	}
}

// ResizeRight is the mirror of ResizeLeft, anchored at the end:
// truncation keeps the last n items and padding is prepended. The
// non-positive guard comes first so the truncate branch never sees a
// negative start offset.
func (v Vector[T]) ResizeRight(n int, pad T) Vector[T] {
	switch {
	case n <= 0:
		return Vector[T]{}
	case len(v.items) > n:
		return v.Slice(len(v.items)-n, len(v.items))
	case len(v.items) < n:
		return Repeat(n-len(v.items), pad).Append(v)
	default:
		return v
	}
}

// ResizeLeftWith behaves as ResizeLeft except that padding values are
// generated by calling op with each new index in the result: the k-th
// added slot receives op(Len()+k).
func (v Vector[T]) ResizeLeftWith(n int, op func(int) T) Vector[T] {
	switch {
	case n <= 0:
		return Vector[T]{}
	case len(v.items) > n:
		return v.Slice(0, n)
	case len(v.items) < n:
		offset := len(v.items)
		return v.Append(Initialize(n-offset, func(idx int) T { return op(offset + idx) }))
	default:
		return v
	}
}

// ResizeRightWith behaves as ResizeRight with generated padding. The
// k-th prepended slot receives op(k), the slot's index in the new
// vector, with no offset.
func (v Vector[T]) ResizeRightWith(n int, op func(int) T) Vector[T] {
	switch {
	case n <= 0:
		return Vector[T]{}
	case len(v.items) > n:
		return v.Slice(len(v.items)-n, len(v.items))
	case len(v.items) < n:
		return Initialize(n-len(v.items), op).Append(v)
	default:
		return v
	}
}
