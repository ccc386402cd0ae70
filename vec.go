// Package vec provides a fixed-length, immutable, 0-indexed sequence
// type, Vector, and a set of total operations over it: safe point
// updates, directional slicing with from-the-end index semantics,
// element-wise combination of up to five vectors, structural
// insert/remove/split, left- and right-anchored resizing, and bulk
// transformations.
//
// Every operation in the package is pure: vectors are values, nothing
// mutates its receiver or arguments, and out-of-range indexes or
// degenerate lengths resolve to a documented result (the input
// unchanged, an empty vector, or truncation to the shortest input)
// rather than a panic or an error.
package vec

// Vector is an immutable 0-indexed sequence of items. The zero value
// is the empty vector and is safe to use. Operations that would
// modify a vector instead return a new one, and the original remains
// observably unchanged. Sub-range extraction shares backing storage
// with its source; no operation ever writes into an existing backing
// array, so sharing is never visible to callers.
type Vector[T any] struct {
	items []T
}

// New constructs a vector by copying the input slice. Later changes
// to the slice do not affect the vector.
func New[T any](in []T) Vector[T] {
	out := make([]T, len(in))
	copy(out, in)
	return Vector[T]{items: out}
}

// Of constructs a vector of type T from a sequence of variadic
// items.
func Of[T any](items ...T) Vector[T] { return New(items) }

// Empty returns the vector of length zero.
func Empty[T any]() Vector[T] { return Vector[T]{} }

// Repeat constructs a vector holding n copies of the value. A
// non-positive n yields the empty vector.
func Repeat[T any](n int, val T) Vector[T] {
	if n <= 0 {
		return Vector[T]{}
	}
	items := make([]T, n)
	for idx := range items {
		items[idx] = val
	}
	return Vector[T]{items: items}
}

// Initialize constructs a vector of length n where the item at every
// index is op(index). A non-positive n yields the empty vector.
func Initialize[T any](n int, op func(int) T) Vector[T] {
	if n <= 0 {
		return Vector[T]{}
	}
	items := make([]T, n)
	for idx := range items {
		items[idx] = op(idx)
	}
	return Vector[T]{items: items}
}

// Len returns the number of items in the vector.
func (v Vector[T]) Len() int { return len(v.items) }

// IsEmpty returns true when there are no items in the vector.
func (v Vector[T]) IsEmpty() bool { return len(v.items) == 0 }

// Get returns the item at the provided index. The second value is
// false, and the first the zero value for T, when the index is
// outside [0, Len()).
func (v Vector[T]) Get(index int) (T, bool) {
	if index < 0 || index >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[index], true
}

// First returns the initial item, if any.
func (v Vector[T]) First() (T, bool) { return v.Get(0) }

// Last returns the final item, if any.
func (v Vector[T]) Last() (T, bool) { return v.Get(len(v.items) - 1) }

// Set returns a vector with the item at the provided index replaced
// by val. Out-of-range indexes return the vector unchanged.
func (v Vector[T]) Set(index int, val T) Vector[T] {
	if index < 0 || index >= len(v.items) {
		return v
	}
	out := make([]T, len(v.items))
	copy(out, v.items)
	out[index] = val
	return Vector[T]{items: out}
}

// Update returns a vector with the item at the provided index
// replaced by op applied to the current item. Out-of-range indexes
// return the vector unchanged; op is called exactly once, and only
// when the index is valid.
func (v Vector[T]) Update(index int, op func(T) T) Vector[T] {
	if index < 0 || index >= len(v.items) {
		return v
	}
	return v.Set(index, op(v.items[index]))
}

// Slice extracts the half-open range [start, end). Bounds are clamped
// to the vector: starts below zero begin at the first item, ends past
// the length stop at the last, and inverted or out-of-range pairs
// yield the empty vector. The result shares storage with its source.
func (v Vector[T]) Slice(start, end int) Vector[T] {
	start = max(0, min(start, len(v.items)))
	end = max(start, min(end, len(v.items)))
	return Vector[T]{items: v.items[start:end:end]}
}

// Append returns the catenation of the two vectors.
func (v Vector[T]) Append(other Vector[T]) Vector[T] {
	if other.IsEmpty() {
		return v
	}
	if v.IsEmpty() {
		return other
	}
	out := make([]T, 0, len(v.items)+len(other.items))
	out = append(out, v.items...)
	out = append(out, other.items...)
	return Vector[T]{items: out}
}

// Push returns a vector with the item added at the end.
func (v Vector[T]) Push(val T) Vector[T] {
	out := make([]T, 0, len(v.items)+1)
	out = append(out, v.items...)
	return Vector[T]{items: append(out, val)}
}

// ToSlice copies the contents of the vector into a plain slice.
// Changes to the result do not affect the vector.
func (v Vector[T]) ToSlice() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}
