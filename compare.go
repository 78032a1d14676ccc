package vec

import (
	"cmp"
	"slices"
)

// Equal reports whether two vectors hold equal items in the same order.
func Equal[Item comparable](a, b *Vector[Item]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal] but compares items with eq, allowing the two
// vectors to hold different item types.
func EqualFunc[A, B any](a *Vector[A], b *Vector[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare orders two vectors lexicographically, comparing items pairwise
// until a difference is found. If one vector is a prefix of the other, the
// shorter one is less. The result is -1 when a is less than b, 0 when they
// are equal, and +1 when a is greater, so every ordering relation follows
// from its sign.
func Compare[Item cmp.Ordered](a, b *Vector[Item]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like [Compare] but compares items with cmp, allowing the
// two vectors to hold different item types.
func CompareFunc[A, B any](a *Vector[A], b *Vector[B], cmp func(A, B) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}
