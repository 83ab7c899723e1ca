package Trees

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 80000
)

func collect[T cmp.Ordered](u *AVLTree[T]) []T {
	s := make([]T, 0, u.Size())
	u.InOrder(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// heightBound is the worst case AVL height in nodes for n elements.
func heightBound(n uint) float64 {
	return 1.4405*math.Log2(float64(n)+2) - 0.3277
}

func TestAVLTree_Insert(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for n := 0; n < tAddN; n++ {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if tree.Insert(b) == in {
			t.Errorf("wrong insert result for key %v", b)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	s := collect(tree)
	if len(s) != len(content) {
		t.Errorf("inorder size is %d, want %d", len(s), len(content))
	}
	if !slices.IsSorted(s) {
		t.Errorf("inorder is not sorted")
	}
	for _, v := range s {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestAVLTree_InsertDup(t *testing.T) {
	tree := New[int]()
	a := []int{5, 3, 8, 1, 4, 7, 9}
	for _, v := range a {
		if !tree.Insert(v) {
			t.Errorf("failed to insert key %v", v)
		}
	}
	before := collect(tree)
	for _, v := range a {
		if tree.Insert(v) {
			t.Errorf("inserted duplicate key %v", v)
		}
	}
	if tree.Size() != uint(len(a)) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(a))
	}
	if !slices.Equal(before, collect(tree)) {
		t.Error("duplicate insert changed the tree")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestAVLTree_Remove(t *testing.T) {
	tree := New[int]()
	if tree.Remove(0) {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	content := make(map[int]struct{})
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i, n := 0, rg.Intn(len(a)); i < n; i++ {
		_, in := content[a[i]]
		if tree.Remove(a[i]) != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
	for k := range content {
		if !tree.Has(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	before := collect(tree)
	if !slices.IsSorted(before) {
		t.Errorf("inorder is not sorted")
	}
	if tree.Remove(tAddValRange + 1) {
		t.Error("deleted an absent key")
	}
	if !slices.Equal(before, collect(tree)) {
		t.Error("failed delete changed the tree")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
}

func TestAVLTree_RoundTrip(t *testing.T) {
	tree := New[int]()
	a := rg.Perm(tAddN)
	for _, v := range a {
		tree.Insert(v)
	}
	rg.Shuffle(len(a), func(i, j int) {
		a[i], a[j] = a[j], a[i]
	})
	for i, v := range a {
		if !tree.Remove(v) {
			t.Fatalf("failed to delete key %v", v)
		}
		if i&1023 == 0 && tree.Corrupt() {
			t.Fatalf("tree is corrupt after %d deletes", i+1)
		}
	}
	if !tree.IsEmpty() || tree.Size() != 0 {
		t.Errorf("tree not empty after deleting everything, size %d", tree.Size())
	}
}

func TestAVLTree_HeightBound(t *testing.T) {
	tree := New[int]()
	for n := 1; n <= 1000; n++ {
		tree.Insert(n)
		if float64(tree.Height()) > heightBound(tree.Size()) {
			t.Fatalf("height %d exceeds bound %f at size %d", tree.Height(), heightBound(tree.Size()), tree.Size())
		}
		if n&63 == 0 && tree.Corrupt() {
			t.Fatalf("tree is corrupt at size %d", n)
		}
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestAVLTree_Rotations(t *testing.T) {
	// every insertion order of {10,20,30} that unbalances the root exercises
	// one rotation case; all settle with 20 at the root.
	for _, a := range [][3]int{{10, 20, 30}, {30, 20, 10}, {10, 30, 20}, {30, 10, 20}} {
		tree := New[int]()
		for _, v := range a {
			tree.Insert(v)
		}
		var pre []int
		tree.PreOrder(func(v int) bool {
			pre = append(pre, v)
			return true
		})
		if !slices.Equal(pre, []int{20, 10, 30}) {
			t.Errorf("order %v: preorder is %v, want [20 10 30]", a, pre)
		}
		if tree.Height() != 2 {
			t.Errorf("order %v: height is %d, want 2", a, tree.Height())
		}
	}
}

func TestAVLTree_Scenario(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(v)
	}
	if s := collect(tree); !slices.Equal(s, []int{20, 30, 40, 50, 60, 70, 80}) {
		t.Errorf("inorder is %v", s)
	}
	if !tree.Has(40) {
		t.Error("tree does not have key 40")
	}
	if tree.Has(90) {
		t.Error("tree has non existent key 90")
	}
	var pre, post []int
	tree.PreOrder(func(v int) bool {
		pre = append(pre, v)
		return true
	})
	tree.PostOrder(func(v int) bool {
		post = append(post, v)
		return true
	})
	if !slices.Equal(pre, []int{50, 30, 20, 40, 70, 60, 80}) {
		t.Errorf("preorder is %v", pre)
	}
	if !slices.Equal(post, []int{20, 40, 30, 60, 80, 70, 50}) {
		t.Errorf("postorder is %v", post)
	}
	if v, err := tree.Min(); err != nil || v != 20 {
		t.Errorf("min is %v, %v", v, err)
	}
	if v, err := tree.Max(); err != nil || v != 80 {
		t.Errorf("max is %v, %v", v, err)
	}
	if !tree.Remove(20) {
		t.Error("failed to delete key 20")
	}
	if s := collect(tree); !slices.Equal(s, []int{30, 40, 50, 60, 70, 80}) {
		t.Errorf("inorder after delete is %v", s)
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt after delete")
	}
	if v, err := tree.Min(); err != nil || v != 30 {
		t.Errorf("min after delete is %v, %v", v, err)
	}
}

func TestAVLTree_MinMaxEmpty(t *testing.T) {
	tree := New[int]()
	if _, err := tree.Min(); err == nil {
		t.Error("min on empty tree didn't fail")
	} else if _, ok := err.(*EmptyTreeError); !ok {
		t.Errorf("min on empty tree returned %T", err)
	}
	if _, err := tree.Max(); err == nil {
		t.Error("max on empty tree didn't fail")
	} else if _, ok := err.(*EmptyTreeError); !ok {
		t.Errorf("max on empty tree returned %T", err)
	}
}

func TestAVLTree_Clear(t *testing.T) {
	tree := New[int]()
	for _, v := range rg.Perm(1000) {
		tree.Insert(v)
	}
	tree.Clear()
	if !tree.IsEmpty() || tree.Size() != 0 || tree.Height() != 0 {
		t.Error("tree not empty after clear")
	}
	tree.Clear()
	if !tree.IsEmpty() {
		t.Error("tree not empty after second clear")
	}
	if !tree.Insert(1) || !tree.Has(1) || tree.Size() != 1 {
		t.Error("tree unusable after clear")
	}
}

func TestAVLTree_From(t *testing.T) {
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i * 2
	}
	tree := From(content, true)
	if tree.Size() != uint(len(content)) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if !slices.Equal(collect(tree), content) {
		t.Error("inorder differs from source slice")
	}
	if tree.Corrupt() {
		t.Error("tree is corrupt")
	}
	if float64(tree.Height()) > heightBound(tree.Size()) {
		t.Errorf("height %d exceeds bound %f", tree.Height(), heightBound(tree.Size()))
	}
	t.Logf("height: %d, size: %d.\n", tree.Height(), tree.Size())
}

func TestAVLTree_FromInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("unsorted slice didn't panic")
		} else if _, ok := r.(InvalidSliceError); !ok {
			t.Errorf("panicked with %T", r)
		}
	}()
	From([]int{1, 3, 2, 4}, true)
}

func TestAVLTree_PreSucc(t *testing.T) {
	content := make([]int, 1000)
	for i := range content {
		content[i] = i * 2
	}
	tree := From(content, false)
	for i := 1; i < len(content)-1; i++ {
		if p, ok := tree.Predecessor(content[i]); !ok || p != content[i-1] {
			t.Fatalf("wrong predecessor %d of %d", p, content[i])
		}
		if s, ok := tree.Successor(content[i]); !ok || s != content[i+1] {
			t.Fatalf("wrong successor %d of %d", s, content[i])
		}
		// probes between stored values land on the same neighbors
		if p, ok := tree.Predecessor(content[i] + 1); !ok || p != content[i] {
			t.Fatalf("wrong predecessor %d of %d", p, content[i]+1)
		}
		if s, ok := tree.Successor(content[i] - 1); !ok || s != content[i] {
			t.Fatalf("wrong successor %d of %d", s, content[i]-1)
		}
	}
	if _, ok := tree.Predecessor(content[0]); ok {
		t.Error("minimum shouldn't have a predecessor")
	}
	if _, ok := tree.Successor(content[len(content)-1]); ok {
		t.Error("maximum shouldn't have a successor")
	}
}

func TestAVLTree_TraversalEarlyStop(t *testing.T) {
	tree := New[int]()
	for _, v := range rg.Perm(100) {
		tree.Insert(v)
	}
	for _, walk := range []func(func(int) bool){tree.InOrder, tree.PreOrder, tree.PostOrder} {
		n := 0
		walk(func(int) bool {
			n++
			return n < 3
		})
		if n != 3 {
			t.Errorf("walk visited %d elements after early stop, want 3", n)
		}
	}
}

func TestAVLTree_DeleteRebalance(t *testing.T) {
	tree := New[int]()
	for n := 1; n <= 4096; n++ {
		tree.Insert(n)
	}
	// draining from one end forces rebalancing along the whole spine
	for n := 1; n <= 3000; n++ {
		if !tree.Remove(n) {
			t.Fatalf("failed to delete key %v", n)
		}
		if n&255 == 0 {
			if tree.Corrupt() {
				t.Fatalf("tree is corrupt after deleting %d", n)
			}
			if float64(tree.Height()) > heightBound(tree.Size()) {
				t.Fatalf("height %d exceeds bound %f at size %d", tree.Height(), heightBound(tree.Size()), tree.Size())
			}
		}
	}
	if s := collect(tree); !slices.IsSorted(s) || len(s) != 1096 {
		t.Errorf("inorder wrong after draining, len %d", len(s))
	}
}
