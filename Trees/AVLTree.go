package Trees

import "cmp"

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the cached heights of subtrees:
// at every node the heights of the two subtrees differ by at most 1.
// T is the type of values it will hold.
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr.
// The tree needs to keep track of the height of each subtree, so the
// additional memory cost is 1 byte per node.
// The height D of the tree is less than 1.4405*log2(n+2)-0.3277, so all
// single-element operations are O(log n).
// An individual tree is not safe for concurrent mutation; callers that share
// one across goroutines must serialize Insert/Remove/Clear against each other
// and against any traversal.
type AVLTree[T cmp.Ordered] struct {
	root   nodePtr[T] //the root of the tree. It should be nilPtr initially.
	nilPtr nodePtr[T] // nilPtr is the pointer used instead of nil here, it follows the description in nodePtr
	sz     uint
}

// New returns an empty AVLTree satisfying the above definitions for nilPtr,
// root, and types. AVLTree shouldn't be created directly using struct literal.
func New[T cmp.Ordered]() *AVLTree[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return &AVLTree[T]{root: z, nilPtr: z}
}

// From builds an AVLTree from the given sorted slice recursively. This is
// faster than repeatedly calling Insert. The given slice must be sorted in
// ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check if the conditions are met and panic
// with InvalidSliceError if the conditions are broken. Otherwise, this
// function won't perform the check, and it is up to the user to ensure the
// conditions are met(otherwise the tree will be corrupt).
// Time: O(n).
func From[T cmp.Ordered](sli []T, safe bool) *AVLTree[T] {
	z := new(node[T])
	z.l, z.r = z, z
	var build func([]T) nodePtr[T]
	if safe {
		build = func(s []T) nodePtr[T] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if (l == z || l.v < s[mid]) && (r == z || s[mid] < r.v) {
					return &node[T]{s[mid], l, r, 1 + max(l.h, r.h)}
				} else {
					panic(InvalidSliceError{mid})
				}
			} else {
				return z
			}
		}
	} else {
		build = func(s []T) nodePtr[T] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				return &node[T]{s[mid], l, r, 1 + max(l.h, r.h)}
			} else {
				return z
			}
		}
	}
	return &AVLTree[T]{build(sli), z, uint(len(sli))}
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false and
// nothing changes.
// On the way back up every node whose subtree grew gets its height recomputed;
// when a node's balance factor leaves [-1,1] one of the four rotation cases
// applies. On insert the single-rotation cases use strict comparisons against
// the child's value; the non-strict variants belong to remove only.
func (u *AVLTree[T]) insert(curPtr *nodePtr[T], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[T]{v, u.nilPtr, u.nilPtr, 1}
		return true
	} else {
		inserted := false
		if v < cur.v {
			inserted = u.insert(&cur.l, v)
		} else if v == cur.v {
			return false
		} else {
			inserted = u.insert(&cur.r, v)
		}
		if inserted {
			cur.h = 1 + max(cur.l.h, cur.r.h)
			if b := cur.l.h - cur.r.h; b > 1 {
				if v < cur.l.v { // left-left
					rotateRight(curPtr)
				} else { // left-right
					rotateLeft(&cur.l)
					rotateRight(curPtr)
				}
			} else if b < -1 {
				if v > cur.r.v { // right-right
					rotateLeft(curPtr)
				} else { // right-left
					rotateRight(&cur.r)
					rotateLeft(curPtr)
				}
			}
		}
		return inserted
	}

}

// Insert [Tree.Insert]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

// remove the value v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed(v doesn't exist
// in u), otherwise true.
// A node with two children copies the value of its in-order successor(the
// leftmost node of its right subtree) and then removes the successor from the
// right subtree; leaf and one-child nodes are spliced out directly.
// The rebalancing on the way back up intentionally differs from insert: the
// single-rotation cases fire on a non-strict balance factor of the taller
// child(>=0 for left-left, <=0 for right-right). The subtree the removal came
// out of may have shrunk anywhere, so the child's own balance factor is the
// only reliable discriminator; tightening these to the strict forms used by
// insert breaks rebalancing.
func (u *AVLTree[T]) remove(curPtr *nodePtr[T], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		return false
	} else {
		deleted := false
		if v < cur.v {
			deleted = u.remove(&cur.l, v)
		} else if v == cur.v {
			if cur.l == u.nilPtr {
				*curPtr = cur.r
				return true
			} else if cur.r == u.nilPtr {
				*curPtr = cur.l
				return true
			}
			deleted = true
			t := cur.r
			for t.l != u.nilPtr {
				t = t.l
			}
			cur.v = t.v
			u.remove(&cur.r, t.v)
		} else {
			deleted = u.remove(&cur.r, v)
		}
		if deleted {
			cur.h = 1 + max(cur.l.h, cur.r.h)
			if b := cur.l.h - cur.r.h; b > 1 {
				if cur.l.l.h >= cur.l.r.h { // left-left, non-strict
					rotateRight(curPtr)
				} else { // left-right
					rotateLeft(&cur.l)
					rotateRight(curPtr)
				}
			} else if b < -1 {
				if cur.r.r.h >= cur.r.l.h { // right-right, non-strict
					rotateLeft(curPtr)
				} else { // right-left
					rotateRight(&cur.r)
					rotateLeft(curPtr)
				}
			}
		}
		return deleted
	}

}

// Remove [Tree.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Min [Tree.Min]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Min() (T, error) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, &EmptyTreeError{"Min"}
	}
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur.v, nil
}

// Max [Tree.Max]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Max() (T, error) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, &EmptyTreeError{"Max"}
	}
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, nil
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

func (u *AVLTree[T]) inOrder(cur nodePtr[T], f func(T) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return u.inOrder(cur.l, f) && f(cur.v) && u.inOrder(cur.r, f)
}

// InOrder [Tree.InOrder]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) InOrder(f func(T) bool) {
	u.inOrder(u.root, f)
}

func (u *AVLTree[T]) preOrder(cur nodePtr[T], f func(T) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return f(cur.v) && u.preOrder(cur.l, f) && u.preOrder(cur.r, f)
}

// PreOrder [Tree.PreOrder]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) PreOrder(f func(T) bool) {
	u.preOrder(u.root, f)
}

func (u *AVLTree[T]) postOrder(cur nodePtr[T], f func(T) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return u.postOrder(cur.l, f) && u.postOrder(cur.r, f) && f(cur.v)
}

// PostOrder [Tree.PostOrder]. Recursive.
// Time: O(n)
func (u *AVLTree[T]) PostOrder(f func(T) bool) {
	u.postOrder(u.root, f)
}

// Clear [Tree.Clear]. Dropping the root releases every node to the garbage
// collector; there is no recursive destructor chain to run.
// Time: O(1)
func (u *AVLTree[T]) Clear() {
	u.root = u.nilPtr
	u.sz = 0
}

// IsEmpty [Tree.IsEmpty]
func (u *AVLTree[T]) IsEmpty() bool {
	return u.root == u.nilPtr
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() uint {
	return uint(u.root.h)
}

func (u *AVLTree[T]) corrupt(cur nodePtr[T]) bool {
	if cur == u.nilPtr {
		return false
	}
	if cur.h != 1+max(cur.l.h, cur.r.h) {
		return true
	}
	if b := cur.l.h - cur.r.h; b > 1 || b < -1 {
		return true
	}
	if cur.l != u.nilPtr && !(cur.l.v < cur.v) {
		return true
	}
	if cur.r != u.nilPtr && !(cur.v < cur.r.v) {
		return true
	}
	return u.corrupt(cur.l) || u.corrupt(cur.r)
}

// Corrupt [Tree.Corrupt]. Recursive. Checks the cached heights, the balance
// bound, and the ordering between every node and its children.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	return u.corrupt(u.root)
}
