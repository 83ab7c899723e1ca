package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree that stores nodes in a growable arena instead of one
// heap allocation per node. Child links are indices into ifs; vs[i]
// corresponds to ifs[i+1]. Indexes freed by Del go on a free list threaded
// through info.l and are reused by later Adds, so the arrays never shrink
// while the tree lives. Compared to the pointer representation this trades a
// little indirection for far fewer allocations and no pointer chasing for the
// garbage collector, which matters for very large trees.
// S is the type of the indices and therefore a capacity bound; pick a type
// wide enough for the maximum number of elements plus one.
type Tree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T
	sz S
}

// New returns an empty Tree with capacity preallocated for hint elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	return &Tree[T, S]{base[S]{ifs: make([]info[S], 1, hint+1)}, make([]T, 0, hint), 0}
}

// alloc a slot for v, reusing a freed index when one exists.
func (u *Tree[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{h: 1}
		u.vs[i-1] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{h: 1})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// insert v into the subtree rooted at curI recursively and rebalance on the
// way back up, returning the new subtree root. The rotation cases and their
// strict comparisons are the same as the pointer representation's insert.
func (u *Tree[T, S]) insert(curI S, v T) (S, bool) {
	if curI == 0 {
		return u.alloc(v), true
	}
	added := false
	if v < u.vs[curI-1] {
		var l S
		l, added = u.insert(u.ifs[curI].l, v)
		u.ifs[curI].l = l
	} else if v == u.vs[curI-1] {
		return curI, false
	} else {
		var r S
		r, added = u.insert(u.ifs[curI].r, v)
		u.ifs[curI].r = r
	}
	if added {
		cur := &u.ifs[curI]
		cur.h = 1 + max(u.ifs[cur.l].h, u.ifs[cur.r].h)
		if b := u.ifs[cur.l].h - u.ifs[cur.r].h; b > 1 {
			if v < u.vs[cur.l-1] {
				u.rotateRight(&curI)
			} else {
				u.rotateLeft(&cur.l)
				u.rotateRight(&curI)
			}
		} else if b < -1 {
			if v > u.vs[cur.r-1] {
				u.rotateLeft(&curI)
			} else {
				u.rotateRight(&cur.r)
				u.rotateLeft(&curI)
			}
		}
	}
	return curI, added
}

// Add an element to the tree. Recursive. Returns true if v wasn't already
// present. Add fills free slots before appending to the underlying arrays.
func (u *Tree[T, S]) Add(v T) bool {
	root, added := u.insert(u.root, v)
	u.root = root
	if added {
		u.sz++
	}
	return added
}

// remove v from the subtree rooted at curI recursively, returning the new
// subtree root. Nodes with two children copy the in-order successor's value
// and then remove the successor from the right subtree. The single-rotation
// cases use the non-strict balance factor of the taller child, unlike insert.
func (u *Tree[T, S]) remove(curI S, v T) (S, bool) {
	if curI == 0 {
		return 0, false
	}
	deleted := false
	if v < u.vs[curI-1] {
		var l S
		l, deleted = u.remove(u.ifs[curI].l, v)
		u.ifs[curI].l = l
	} else if v == u.vs[curI-1] {
		if cur := u.ifs[curI]; cur.l == 0 {
			u.addFree(curI)
			return cur.r, true
		} else if cur.r == 0 {
			u.addFree(curI)
			return cur.l, true
		} else {
			si := cur.r
			for u.ifs[si].l != 0 {
				si = u.ifs[si].l
			}
			u.vs[curI-1] = u.vs[si-1]
			r, _ := u.remove(cur.r, u.vs[si-1])
			u.ifs[curI].r = r
			deleted = true
		}
	} else {
		var r S
		r, deleted = u.remove(u.ifs[curI].r, v)
		u.ifs[curI].r = r
	}
	if deleted {
		cur := &u.ifs[curI]
		cur.h = 1 + max(u.ifs[cur.l].h, u.ifs[cur.r].h)
		if b := u.ifs[cur.l].h - u.ifs[cur.r].h; b > 1 {
			if lc := u.ifs[cur.l]; u.ifs[lc.l].h >= u.ifs[lc.r].h {
				u.rotateRight(&curI)
			} else {
				u.rotateLeft(&cur.l)
				u.rotateRight(&curI)
			}
		} else if b < -1 {
			if rc := u.ifs[cur.r]; u.ifs[rc.r].h >= u.ifs[rc.l].h {
				u.rotateLeft(&curI)
			} else {
				u.rotateRight(&cur.r)
				u.rotateLeft(&curI)
			}
		}
	}
	return curI, deleted
}

// Del an element from the tree. Recursive. Returns true if v was present;
// removing an absent element leaves the tree unchanged. The freed index is
// recycled, not released.
func (u *Tree[T, S]) Del(v T) bool {
	root, deleted := u.remove(u.root, v)
	u.root = root
	if deleted {
		u.sz--
	}
	return deleted
}

// Get the pointer to the element that's equal to v in the tree, or nil if v
// isn't present. The pointer is valid until the next Add.
func (u *Tree[T, S]) Get(v T) *T {
	for curI := u.root; curI != 0; {
		if cvp := &u.vs[curI-1]; v < *cvp {
			curI = u.ifs[curI].l
		} else if v > *cvp {
			curI = u.ifs[curI].r
		} else {
			return cvp
		}
	}
	return nil
}

// Has element v.
func (u *Tree[T, S]) Has(v T) bool {
	return u.Get(v) != nil
}

// Min returns a pointer to the smallest element, or nil if the tree is empty.
func (u *Tree[T, S]) Min() *T {
	if u.root == 0 {
		return nil
	}
	curI := u.root
	for u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return &u.vs[curI-1]
}

// Max returns a pointer to the largest element, or nil if the tree is empty.
func (u *Tree[T, S]) Max() *T {
	if u.root == 0 {
		return nil
	}
	curI := u.root
	for u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return &u.vs[curI-1]
}

// Predecessor of v: the greatest element less than v, or nil.
func (u *Tree[T, S]) Predecessor(v T) (p *T) {
	for curI := u.root; curI != 0; {
		if v <= u.vs[curI-1] {
			curI = u.ifs[curI].l
		} else {
			p = &u.vs[curI-1]
			curI = u.ifs[curI].r
		}
	}
	return
}

// Successor of v: the smallest element greater than v, or nil.
func (u *Tree[T, S]) Successor(v T) (p *T) {
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			p = &u.vs[curI-1]
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return
}

// InOrder calls f with a pointer to each element in ascending order until f
// returns false. Recursive. The tree must not be modified during the walk.
func (u *Tree[T, S]) InOrder(f func(*T) bool) {
	u.inOrder(u.root, func(i S) bool { return f(&u.vs[i-1]) })
}

// PreOrder is InOrder in root-left-right order.
func (u *Tree[T, S]) PreOrder(f func(*T) bool) {
	u.preOrder(u.root, func(i S) bool { return f(&u.vs[i-1]) })
}

// PostOrder is InOrder in left-right-root order.
func (u *Tree[T, S]) PostOrder(f func(*T) bool) {
	u.postOrder(u.root, func(i S) bool { return f(&u.vs[i-1]) })
}

// Clear the tree. Also resets the memory of the value array if reset is true,
// releasing whatever the elements point at; the arrays themselves are kept
// for reuse. O(1) if reset==false, O(size) if reset==true. Idempotent.
func (u *Tree[T, S]) Clear(reset bool) {
	if reset {
		for i := range u.vs {
			u.vs[i] = *new(T)
		}
	}
	u.vs = u.vs[:0]
	u.clrIfs()
	u.sz = 0
}

// IsEmpty reports whether the tree has no elements.
func (u *Tree[T, S]) IsEmpty() bool {
	return u.root == 0
}

// Size of the tree.
func (u *Tree[T, S]) Size() S {
	return u.sz
}

func (u *Tree[T, S]) corrupt(curI S) bool {
	if curI == 0 {
		return false
	}
	cur := u.ifs[curI]
	if cur.h != 1+max(u.ifs[cur.l].h, u.ifs[cur.r].h) {
		return true
	}
	if b := u.ifs[cur.l].h - u.ifs[cur.r].h; b > 1 || b < -1 {
		return true
	}
	if cur.l != 0 && !(u.vs[cur.l-1] < u.vs[curI-1]) {
		return true
	}
	if cur.r != 0 && !(u.vs[curI-1] < u.vs[cur.r-1]) {
		return true
	}
	return u.corrupt(cur.l) || u.corrupt(cur.r)
}

// Corrupt returns whether the cached heights, the balance bound, or the
// ordering between a node and its children is violated anywhere. Recursive.
func (u *Tree[T, S]) Corrupt() bool {
	return u.corrupt(u.root)
}
