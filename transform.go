package vec

import "github.com/tychoish/fun/ft"

// Map produces a vector of the same length by applying op to every
// item in order.
func Map[T any, O any](v Vector[T], op func(T) O) Vector[O] {
	out := make([]O, len(v.items))
	for idx := range v.items {
		out[idx] = op(v.items[idx])
	}
	return Vector[O]{items: out}
}

// FilterMap applies op to every item in order and collects the
// results for which the second return value is true, preserving the
// original order.
func FilterMap[T any, O any](v Vector[T], op func(T) (O, bool)) Vector[O] {
	out := make([]O, 0, len(v.items))
	for idx := range v.items {
		if mapped, ok := op(v.items[idx]); ok {
			out = append(out, mapped)
		}
	}
	return Vector[O]{items: out}
}

// Filter returns a vector holding the items for which p returns true,
// in their original order.
func (v Vector[T]) Filter(p func(T) bool) Vector[T] {
	out := make([]T, 0, len(v.items))
	for idx := range v.items {
		if p(v.items[idx]) {
			out = append(out, v.items[idx])
		}
	}
	return Vector[T]{items: out}
}

// RemoveWhen returns a vector holding exactly the items for which p
// returns false, in their original order.
func (v Vector[T]) RemoveWhen(p func(T) bool) Vector[T] {
	return v.Filter(func(item T) bool { return ft.Not(p(item)) })
}

// Reverse returns a vector with the items in the opposite order.
func (v Vector[T]) Reverse() Vector[T] {
	out := make([]T, len(v.items))
	for idx := range v.items {
		out[len(out)-1-idx] = v.items[idx]
	}
	return Vector[T]{items: out}
}

// MapToSlice applies op to every item in order and materializes the
// results in a plain slice, for consumers that only need linear
// traversal of the output.
func MapToSlice[T any, O any](v Vector[T], op func(T) O) []O {
	out := make([]O, len(v.items))
	for idx := range v.items {
		out[idx] = op(v.items[idx])
	}
	return out
}

// IndexedMapToSlice is MapToSlice where op also receives each item's
// index in the vector, ascending from zero.
func IndexedMapToSlice[T any, O any](v Vector[T], op func(int, T) O) []O {
	out := make([]O, len(v.items))
	for idx := range v.items {
		out[idx] = op(idx, v.items[idx])
	}
	return out
}

// Any reports whether p returns true for at least one item. Any on
// the empty vector is false.
func (v Vector[T]) Any(p func(T) bool) bool {
	for idx := range v.items {
		if p(v.items[idx]) {
			return true
		}
	}
	return false
}

// All reports whether p returns true for every item. All on the empty
// vector is true.
func (v Vector[T]) All(p func(T) bool) bool {
	for idx := range v.items {
		if !p(v.items[idx]) {
			return false
		}
	}
	return true
}

// Member reports whether the item occurs in the vector.
func Member[T comparable](v Vector[T], item T) bool {
	return v.Any(func(in T) bool { return in == item })
}

// Intersperse places sep between every two adjacent items. Empty and
// single-item vectors are returned unchanged.
func (v Vector[T]) Intersperse(sep T) Vector[T] {
	if len(v.items) <= 1 {
		return v
	}
	out := make([]T, 0, 2*len(v.items)-1)
	for idx := range v.items {
		if idx > 0 {
			out = append(out, sep)
		}
		out = append(out, v.items[idx])
	}
	return Vector[T]{items: out}
}
