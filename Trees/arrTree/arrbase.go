package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the Tree
// The zero value at index 0 is the shared nil: its children loop back to 0
// and its h is 0, so child heights can be read without bounds checks on
// absent subtrees.
type info[S constraints.Unsigned] struct {
	l, r S
	h    int8
}

type base[S constraints.Unsigned] struct {
	root, free S         //free is the beginning of the linked list that contains all the free indexes, in which case we use l as next.
	ifs        []info[S] //0 is loopback nil. all index are based on ifs
}

func (u *base[S]) rotateLeft(ni *S) {
	n := &u.ifs[*ni]
	rci := n.r

	n.r = u.ifs[rci].l
	u.ifs[rci].l = *ni
	n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
	rc := &u.ifs[rci]
	rc.h = 1 + max(u.ifs[rc.l].h, u.ifs[rc.r].h)
	*ni = rci
}

func (u *base[S]) rotateRight(ni *S) {
	n := &u.ifs[*ni]
	lci := n.l

	n.l = u.ifs[lci].r
	u.ifs[lci].r = *ni
	n.h = 1 + max(u.ifs[n.l].h, u.ifs[n.r].h)
	lc := &u.ifs[lci]
	lc.h = 1 + max(u.ifs[lc.l].h, u.ifs[lc.r].h)
	*ni = lci
}

// adds a free index
func (u *base[S]) addFree(a S) {
	u.ifs[a].l = u.free
	u.free = a
}

// gets a free index. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

func (u *base[S]) inOrder(curI S, f func(S) bool) bool {
	if curI == 0 {
		return true
	}
	return u.inOrder(u.ifs[curI].l, f) && f(curI) && u.inOrder(u.ifs[curI].r, f)
}

func (u *base[S]) preOrder(curI S, f func(S) bool) bool {
	if curI == 0 {
		return true
	}
	return f(curI) && u.preOrder(u.ifs[curI].l, f) && u.preOrder(u.ifs[curI].r, f)
}

func (u *base[S]) postOrder(curI S, f func(S) bool) bool {
	if curI == 0 {
		return true
	}
	return u.postOrder(u.ifs[curI].l, f) && u.postOrder(u.ifs[curI].r, f) && f(curI)
}

// Height of the tree in nodes.
func (u *base[S]) Height() uint {
	return uint(u.ifs[u.root].h)
}

func (u *base[S]) clrIfs() {
	u.ifs = u.ifs[:1]
	u.root, u.free = 0, 0
}
