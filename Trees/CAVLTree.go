package Trees

// CAVLTree is the version of AVLTree for user-defined struct satisfying a
// total order given by two functions. All methods are implemented exactly as
// AVLTree except for using lt and eq for comparisons. Arguments passed to lt
// and eq will always be type T so no type checks are needed. lt must be
// antisymmetric, transitive, and total, and eq must be consistent with it,
// otherwise the tree will be corrupt.
type CAVLTree[T any] struct {
	root   nodePtr[T]
	nilPtr nodePtr[T]
	sz     uint
	lt, eq func(T, T) bool
}

// New1 is the CAVLTree equivalence of New.
func New1[T any](lessThan, equals func(T, T) bool) *CAVLTree[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return &CAVLTree[T]{root: z, nilPtr: z, lt: lessThan, eq: equals}
}

// From1 is the CAVLTree equivalence of From.
func From1[T any](sli []T, lessThan, equals func(T, T) bool, safe bool) *CAVLTree[T] {
	z := new(node[T])
	z.l, z.r = z, z
	var build func([]T) nodePtr[T]
	if safe {
		build = func(s []T) nodePtr[T] {
			if len(s) > 0 {
				mid := len(s) >> 1
				l, r := build(s[0:mid]), build(s[mid+1:])
				if (l == z || lessThan(l.v, s[mid])) && (r == z || lessThan(s[mid], r.v)) {
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
	return &CAVLTree[T]{build(sli), z, uint(len(sli)), lessThan, equals}
}

func (u *CAVLTree[T]) insert(curPtr *nodePtr[T], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		*curPtr = &node[T]{v, u.nilPtr, u.nilPtr, 1}
		return true
	} else {
		inserted := false
		if u.lt(v, cur.v) {
			inserted = u.insert(&cur.l, v)
		} else if u.eq(v, cur.v) {
			return false
		} else {
			inserted = u.insert(&cur.r, v)
		}
		if inserted {
			cur.h = 1 + max(cur.l.h, cur.r.h)
			if b := cur.l.h - cur.r.h; b > 1 {
				if u.lt(v, cur.l.v) {
					rotateRight(curPtr)
				} else {
					rotateLeft(&cur.l)
					rotateRight(curPtr)
				}
			} else if b < -1 {
				if u.lt(cur.r.v, v) {
					rotateLeft(curPtr)
				} else {
					rotateRight(&cur.r)
					rotateLeft(curPtr)
				}
			}
		}
		return inserted
	}

}

// Insert [Tree.Insert]. Recursive.
func (u *CAVLTree[T]) Insert(v T) bool {
	if u.insert(&u.root, v) {
		u.sz++
		return true
	}
	return false
}

func (u *CAVLTree[T]) remove(curPtr *nodePtr[T], v T) bool {
	if cur := *curPtr; cur == u.nilPtr {
		return false
	} else {
		deleted := false
		if u.lt(v, cur.v) {
			deleted = u.remove(&cur.l, v)
		} else if u.eq(v, cur.v) {
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
				if cur.l.l.h >= cur.l.r.h {
					rotateRight(curPtr)
				} else {
					rotateLeft(&cur.l)
					rotateRight(curPtr)
				}
			} else if b < -1 {
				if cur.r.r.h >= cur.r.l.h {
					rotateLeft(curPtr)
				} else {
					rotateRight(&cur.r)
					rotateLeft(curPtr)
				}
			}
		}
		return deleted
	}

}

// Remove [Tree.Remove]. Recursive.
func (u *CAVLTree[T]) Remove(v T) bool {
	if u.remove(&u.root, v) {
		u.sz--
		return true
	}
	return false
}

// Has [Tree.Has]
func (u *CAVLTree[T]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if u.lt(v, cur.v) {
			cur = cur.l
		} else if u.eq(v, cur.v) {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// Min [Tree.Min]
func (u *CAVLTree[T]) Min() (T, error) {
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
func (u *CAVLTree[T]) Max() (T, error) {
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
func (u *CAVLTree[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.lt(cur.v, v) {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Tree.Successor]
func (u *CAVLTree[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.lt(v, cur.v) {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

func (u *CAVLTree[T]) inOrder(cur nodePtr[T], f func(T) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return u.inOrder(cur.l, f) && f(cur.v) && u.inOrder(cur.r, f)
}

// InOrder [Tree.InOrder]. Recursive.
func (u *CAVLTree[T]) InOrder(f func(T) bool) {
	u.inOrder(u.root, f)
}

func (u *CAVLTree[T]) preOrder(cur nodePtr[T], f func(T) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return f(cur.v) && u.preOrder(cur.l, f) && u.preOrder(cur.r, f)
}

// PreOrder [Tree.PreOrder]. Recursive.
func (u *CAVLTree[T]) PreOrder(f func(T) bool) {
	u.preOrder(u.root, f)
}

func (u *CAVLTree[T]) postOrder(cur nodePtr[T], f func(T) bool) bool {
	if cur == u.nilPtr {
		return true
	}
	return u.postOrder(cur.l, f) && u.postOrder(cur.r, f) && f(cur.v)
}

// PostOrder [Tree.PostOrder]. Recursive.
func (u *CAVLTree[T]) PostOrder(f func(T) bool) {
	u.postOrder(u.root, f)
}

// Clear [Tree.Clear]
func (u *CAVLTree[T]) Clear() {
	u.root = u.nilPtr
	u.sz = 0
}

// IsEmpty [Tree.IsEmpty]
func (u *CAVLTree[T]) IsEmpty() bool {
	return u.root == u.nilPtr
}

// Size [Tree.Size]
func (u *CAVLTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
func (u *CAVLTree[T]) Height() uint {
	return uint(u.root.h)
}

func (u *CAVLTree[T]) corrupt(cur nodePtr[T]) bool {
	if cur == u.nilPtr {
		return false
	}
	if cur.h != 1+max(cur.l.h, cur.r.h) {
		return true
	}
	if b := cur.l.h - cur.r.h; b > 1 || b < -1 {
		return true
	}
	if cur.l != u.nilPtr && !u.lt(cur.l.v, cur.v) {
		return true
	}
	if cur.r != u.nilPtr && !u.lt(cur.v, cur.r.v) {
		return true
	}
	return u.corrupt(cur.l) || u.corrupt(cur.r)
}

// Corrupt [Tree.Corrupt]. Recursive.
func (u *CAVLTree[T]) Corrupt() bool {
	return u.corrupt(u.root)
}
