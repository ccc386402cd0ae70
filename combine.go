package vec

// Pair is a fixed-arity product of two values, produced by Zip and
// consumed by Unzip.
type Pair[A any, B any] struct {
	One A
	Two B
}

// MakePair constructs a Pair, and is passed directly to Map2 by Zip.
func MakePair[A any, B any](one A, two B) Pair[A, B] { return Pair[A, B]{One: one, Two: two} }

// Triple is the three-value analog of Pair, produced by Zip3.
type Triple[A any, B any, C any] struct {
	One   A
	Two   B
	Three C
}

// MakeTriple constructs a Triple.
func MakeTriple[A any, B any, C any](one A, two B, three C) Triple[A, B, C] {
	return Triple[A, B, C]{One: one, Two: two, Three: three}
}

// Map2 combines two vectors positionally, calling op on each pair of
// items at the same index. The result is as long as the shorter
// input; excess items of the longer one are dropped.
func Map2[A any, B any, R any](a Vector[A], b Vector[B], op func(A, B) R) Vector[R] {
	out := make([]R, min(len(a.items), len(b.items)))
	for idx := range out {
		out[idx] = op(a.items[idx], b.items[idx])
	}
	return Vector[R]{items: out}
}

// Apply pairs the k-th function in fns with the k-th value in vals,
// truncating to the shorter of the two. It is Map2 specialized to a
// vector of functions.
func Apply[A any, R any](fns Vector[func(A) R], vals Vector[A]) Vector[R] {
	return Map2(fns, vals, func(op func(A) R, val A) R { return op(val) })
}

// Map3 combines three vectors positionally, truncating to the
// shortest. It is built by partially applying op across the first two
// vectors with Map2 and feeding the third to Apply.
func Map3[A any, B any, C any, R any](a Vector[A], b Vector[B], c Vector[C], op func(A, B, C) R) Vector[R] {
	return Apply(Map2(a, b, func(av A, bv B) func(C) R {
		return func(cv C) R { return op(av, bv, cv) }
	}), c)
}

// Map4 combines four vectors positionally, truncating to the
// shortest.
func Map4[A any, B any, C any, D any, R any](a Vector[A], b Vector[B], c Vector[C], d Vector[D], op func(A, B, C, D) R) Vector[R] {
	return Apply(Map3(a, b, c, func(av A, bv B, cv C) func(D) R {
		return func(dv D) R { return op(av, bv, cv, dv) }
	}), d)
}

// Map5 combines five vectors positionally, truncating to the
// shortest.
func Map5[A any, B any, C any, D any, E any, R any](a Vector[A], b Vector[B], c Vector[C], d Vector[D], e Vector[E], op func(A, B, C, D, E) R) Vector[R] {
	return Apply(Map4(a, b, c, d, func(av A, bv B, cv C, dv D) func(E) R {
		return func(ev E) R { return op(av, bv, cv, dv, ev) }
	}), e)
}

// Zip pairs the two vectors positionally, truncating to the shorter.
func Zip[A any, B any](a Vector[A], b Vector[B]) Vector[Pair[A, B]] {
	return Map2(a, b, MakePair[A, B])
}

// Zip3 groups three vectors positionally, truncating to the shortest.
func Zip3[A any, B any, C any](a Vector[A], b Vector[B], c Vector[C]) Vector[Triple[A, B, C]] {
	return Map3(a, b, c, MakeTriple[A, B, C])
}

// Unzip projects a vector of pairs into two vectors of the same
// length as the input, holding the One and Two components
// respectively. For equal-length a and b, Unzip(Zip(a, b)) returns a
// and b.
func Unzip[A any, B any](pairs Vector[Pair[A, B]]) (Vector[A], Vector[B]) {
	ones := make([]A, len(pairs.items))
	twos := make([]B, len(pairs.items))
	for idx := range pairs.items {
		ones[idx] = pairs.items[idx].One
		twos[idx] = pairs.items[idx].Two
	}
	return Vector[A]{items: ones}, Vector[B]{items: twos}
}
