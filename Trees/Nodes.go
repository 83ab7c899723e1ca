package Trees

// A node in the AVLTree
// The zero value is meaningless.
type node[T any] struct {
	v    T
	l, r nodePtr[T]
	h    int8
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in AVLTree. The value of this node has
// both node.l, node.r = itself, and h=0. v is the zero value of T.
// Because the sentinel reports height 0, child heights can be read without
// nil checks anywhere.
type nodePtr[T any] *node[T]

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content. Heights of the two moved nodes are recomputed; no
// other node's height changes.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n *nodePtr[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.h = 1 + max(r.l.h, r.r.h)
	rc.h = 1 + max(rc.l.h, rc.r.h)
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight[T any](n *nodePtr[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.h = 1 + max(r.l.h, r.r.h)
	lc.h = 1 + max(lc.l.h, lc.r.h)
	*n = lc
}
