package list

import "cmp"

// Equal reports whether a and b have the same length and equal elements.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	x, y := a.head.next, b.head.next
	for ; x != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}

	return true
}

// Compare compares a and b lexicographically. The result is 0 if a == b,
// -1 if a < b, and +1 if a > b. A list that is a prefix of the other sorts
// first.
//
// Elements are ordered by [cmp.Compare], which sorts NaN before any other
// floating-point value. Less and the relations derived from it use < instead.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but uses cmpFn on each pair of elements.
func CompareFunc[T, U any](a *List[T], b *List[U], cmpFn func(T, U) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmpFn(x.val, y.val); c != 0 {
			return c
		}
	}

	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return +1
	}
}

// Less reports whether a sorts before b, comparing elements with <.
// An element that is not less than the other either way, like NaN, does not
// decide the order.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if x.val < y.val {
			return true
		}
		if y.val < x.val {
			return false
		}
	}

	return x == nil && y != nil
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Less(a, b) || Equal(a, b)
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b) && !Equal(a, b)
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// Swap exchanges the content of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
