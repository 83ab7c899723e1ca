package Trees

import "fmt"

// Tree represents an ordered collection of unique elements implemented using
// nodes. Receivers that return (T, bool) use the bool to indicate whether the
// first return value is defined; when it is false the value of T is undefined
// and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if v wasn't already present,
	//false otherwise. Inserting an element that's already in the Tree
	//never changes the structure.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if v was present and is now
	//removed, false otherwise. Removing an absent element never changes
	//the structure.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Min element of the tree. Calling Min on an empty tree is a
	//precondition violation and returns an EmptyTreeError.
	Min() (T, error)
	//Max element of the tree. Calling Max on an empty tree is a
	//precondition violation and returns an EmptyTreeError.
	Max() (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//InOrder calls f on every element in ascending order until f returns
	//false. Each call walks the tree from the start; no iterator state is
	//shared between calls. The tree must not be modified during the walk.
	InOrder(f func(T) bool)
	//PreOrder is InOrder in root-left-right order.
	PreOrder(f func(T) bool)
	//PostOrder is InOrder in left-right-root order.
	PostOrder(f func(T) bool)
	//Clear removes every element. Calling Clear on an empty tree is a no-op.
	Clear()
	//IsEmpty reports whether the tree has no elements.
	IsEmpty() bool
	//Size of the tree.
	Size() uint
	//Height of the tree in nodes; 0 for an empty tree, 1 for a single node.
	Height() uint
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or the cached height at some node violates the properties of that
	//specific implementation. A correct implementation never returns true;
	//this exists for tests and internal assertions, not for recovery.
	Corrupt() bool
}

// EmptyTreeError is returned by Min and Max when called on an empty tree.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is empty: cannot " + e.Op + "."
}

// InvalidSliceError is the panic value of the checked From constructors when
// the given slice isn't sorted in strictly ascending order.
type InvalidSliceError struct {
	At int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't sorted or contains duplicates near index %d", e.At)
}
