package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is a singly linked list.
//
// The zero value is an empty list ready to use. A List must not be copied by
// value once used: the sentinel node is part of the struct and iterators
// returned by BeforeBegin point at it. Use Clone or Assign instead.
type List[T any] struct {
	head node[T] // sentinel: head.val is never read
	size int
}

// node is an element in the singly linked list.
type node[T any] struct {
	next *node[T]
	val  T
}

// New returns a list holding vals in order.
func New[T any](vals ...T) *List[T] {
	l := &List[T]{}

	last := &l.head
	for _, v := range vals {
		last = l.linkAfter(last, v)
	}

	return l
}

// FromSeq returns a list holding the values produced by seq in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}

	last := &l.head
	for v := range seq {
		last = l.linkAfter(last, v)
	}

	return l
}

// Clone returns a deep copy of the list. The copy shares no nodes with l.
func (l *List[T]) Clone() *List[T] {
	tmp := &List[T]{}

	last := &tmp.head
	for n := l.head.next; n != nil; n = n.next {
		last = tmp.linkAfter(last, n.val)
	}

	return tmp
}

// Assign replaces the content of l with a copy of src.
//
// The copy is built completely before l is touched, then swapped in. The
// previous content of l is released afterwards.
func (l *List[T]) Assign(src *List[T]) {
	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// Swap exchanges the content of l and other in O(1).
//
// Iterators to elements follow their elements into the other list.
// Iterators returned by BeforeBegin stay bound to their own list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty checks if the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element. The list must not be empty.
func (l *List[T]) Front() T { //nolint:ireturn
	return l.head.next.val
}

// PushFront adds a new element to the front of the list.
func (l *List[T]) PushFront(val T) {
	l.linkAfter(&l.head, val)
}

// PopFront removes the first element and returns it.
//
// The list must not be empty. No check is made: calling PopFront on an empty
// list panics with a nil pointer dereference.
func (l *List[T]) PopFront() T { //nolint:ireturn
	return l.unlinkAfter(&l.head).val
}

// InsertAfter inserts val right after pos and returns an iterator to it.
//
// pos must reference the sentinel (BeforeBegin) or an element of l. The end
// marker has nothing after it.
func (l *List[T]) InsertAfter(pos Position[T], val T) Iterator[T] {
	return Iterator[T]{n: l.linkAfter(pos.node(), val)}
}

// EraseAfter removes the element right after pos and returns an iterator to
// the element that now follows pos, or End.
//
// An element must exist after pos.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	prev := pos.node()
	l.unlinkAfter(prev)

	return Iterator[T]{n: prev.next}
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	for l.head.next != nil {
		l.unlinkAfter(&l.head)
	}
}

// Begin returns an iterator to the first element, or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End returns the end marker.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns an iterator to the sentinel preceding the first element.
// It must not be dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{n: l.head.next}
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head}
}

// All returns an iterator for all elements in the list.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Values returns the elements as a new slice.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.size)
	for v := range l.All() {
		vals = append(vals, v)
	}

	return vals
}

func (l *List[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.val)
	}
	sb.WriteByte(']')

	return sb.String()
}

// linkAfter allocates a node for val, links it after prev and returns it.
func (l *List[T]) linkAfter(prev *node[T], val T) *node[T] {
	n := &node[T]{next: prev.next, val: val}
	prev.next = n
	l.size++

	return n
}

// unlinkAfter detaches the node following prev and returns it.
// The detached node no longer links into the chain.
func (l *List[T]) unlinkAfter(prev *node[T]) *node[T] {
	n := prev.next
	prev.next = n.next
	n.next = nil
	l.size--

	return n
}
