package list_test

import (
	"fmt"

	"github.com/percona/fwdlist/list"
)

func ExampleList_InsertAfter() {
	l := list.New(2, 4)
	l.InsertAfter(l.BeforeBegin(), 1)
	it := l.InsertAfter(l.Begin().Next(), 3)
	fmt.Println(l, it.Value())
	// Output: [1 2 3 4] 3
}

func ExampleList_EraseAfter() {
	l := list.New(1, 2, 3, 4)

	// drop every second element
	for it := l.Begin(); !it.Equal(l.End()) && !it.Next().Equal(l.End()); {
		it = l.EraseAfter(it)
	}
	fmt.Println(l, l.Len())
	// Output: [1 3] 2
}

func ExampleList_Assign() {
	src := list.New("a", "b")
	dst := list.New("x")
	dst.Assign(src)
	dst.PushFront("z")
	fmt.Println(src, dst)
	// Output: [a b] [z a b]
}

func ExampleLess() {
	fmt.Println(list.Less(list.New(1, 2), list.New(1, 2, 3)))
	fmt.Println(list.Greater(list.New(1, 3), list.New(1, 2, 9)))
	fmt.Println(list.Less(list.New[int](), list.New(1)))
	// Output:
	// true
	// true
	// true
}
