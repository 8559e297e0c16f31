package list

// Position is a place in a list chain: the sentinel, an element, or the end
// marker. Both Iterator and ConstIterator are positions, so they can be mixed
// in comparisons and passed to InsertAfter and EraseAfter.
type Position[T any] interface {
	node() *node[T]
}

var (
	_ Position[int] = Iterator[int]{}
	_ Position[int] = ConstIterator[int]{}
)

// Iterator is a forward iterator that allows modifying the referenced element.
//
// An Iterator does not own anything. It stays valid while the node it
// references is linked into a list; using it after EraseAfter, PopFront or
// Clear removed that node is a programming error.
//
// The zero Iterator is the end marker.
type Iterator[T any] struct {
	n *node[T]
}

func (it Iterator[T]) node() *node[T] {
	return it.n
}

// Value returns the referenced element.
func (it Iterator[T]) Value() T { //nolint:ireturn
	return it.n.val
}

// Ptr returns a pointer to the referenced element for in-place updates.
func (it Iterator[T]) Ptr() *T {
	return &it.n.val
}

// Set replaces the referenced element.
func (it Iterator[T]) Set(val T) {
	it.n.val = val
}

// Next returns an iterator to the following node. it must not be End.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Advance moves it to the following node and returns its previous position.
func (it *Iterator[T]) Advance() Iterator[T] {
	prev := *it
	it.n = it.n.next

	return prev
}

// Equal reports whether it and other reference the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.node()
}

// Const returns a read-only iterator to the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n}
}

// ConstIterator is a read-only forward iterator. It follows the same validity
// rules as Iterator.
type ConstIterator[T any] struct {
	n *node[T]
}

func (it ConstIterator[T]) node() *node[T] {
	return it.n
}

// Value returns the referenced element.
func (it ConstIterator[T]) Value() T { //nolint:ireturn
	return it.n.val
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.next}
}

func (it *ConstIterator[T]) Advance() ConstIterator[T] {
	prev := *it
	it.n = it.n.next

	return prev
}

// Equal reports whether it and other reference the same node.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.node()
}
