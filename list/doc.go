/*
Package list provides a generic singly linked list with a sentinel head.

The sentinel sits before the first element, so inserting and erasing "after a
position" works the same at the front as anywhere else:

	l := list.New(2, 3)
	l.InsertAfter(l.BeforeBegin(), 1) // [1 2 3]
	l.EraseAfter(l.Begin())           // [1 3]

Iterators are plain handles to nodes. They are invalidated when the node they
reference is removed. Preconditions (popping an empty list, erasing past the
last element, dereferencing End, mixing iterators of different lists) are not
checked and lead to panics or corrupted lists.

A List is not safe for concurrent use.
*/
package list
