package Trees

import (
	"fmt"

	"github.com/g-m-twostay/splay-rank/Trees/internal"
	"golang.org/x/exp/constraints"
)

// SplayTree is a bottom-up splay tree over the dense key range [0, n) that keeps,
// for each node, the size of its left subtree. Once a node is splayed to the root,
// that size is the number of live keys smaller than it.
// S is the type of keys, arena indexes and counters. It must be able to hold n+1.
// Nodes live in an arena indexed by key, so finding the node of a key is O(1) and
// never walks the tree. Keys can only be removed after Build, never added.
// A SplayTree isn't safe for concurrent use, and queries that splay mutate it.
type SplayTree[S constraints.Unsigned] struct {
	root, size S
	ifs        []info[S]         // ifs[0] is the nil loopback; key k is at ifs[k+1].
	live       internal.BitArray // bit k is up iff key k is in the tree.
}

// Build a tree holding the keys 0..n-1 as a left leaning chain: n-1 is the root and
// each key i is the left child of i+1. The chain is a valid, if unbalanced, tree;
// splaying pays for the balance over later operations.
// Returns ErrInvalidSize if n is negative or isn't below the maximum of S.
// Time: O(n)
func Build[S constraints.Unsigned](n int) (*SplayTree[S], error) {
	if n < 0 || uint64(n) >= uint64(^S(0)) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	u := &SplayTree[S]{root: S(n), size: S(n), ifs: make([]info[S], n+1), live: internal.NewBitArray(n)}
	for i := S(1); i <= S(n); i++ {
		u.ifs[i].lsz = i - 1
		u.setLeft(i, i-1)
	}
	u.live.Fill(n)
	return u, nil
}

// slot of key k, or ErrKeyNotFound when k isn't in the tree.
func (u *SplayTree[S]) slot(k S) (S, error) {
	if k >= S(len(u.ifs)-1) || !u.live.Get(int(k)) {
		return 0, fmt.Errorf("%w: %d", ErrKeyNotFound, k)
	}
	return k + 1, nil
}

// SelectRankAndDelete splays k to the root, removes it, and returns how many keys
// smaller than k were still in the tree right before the removal.
// When both subtrees of k are non-empty, the largest key of the left one is splayed
// to the top of that subtree and the right subtree is hung off it.
// A missing k returns ErrKeyNotFound and leaves the tree untouched.
// Time: amortized O(log n)
func (u *SplayTree[S]) SelectRankAndDelete(k S) (S, error) {
	i, err := u.splayKey(k)
	if err != nil {
		return 0, err
	}
	rank := u.ifs[i].lsz
	l, r := u.ifs[i].l, u.ifs[i].r
	u.ifs[i] = info[S]{}
	u.live.Down(int(k))
	u.size--
	if l != 0 {
		u.ifs[l].p = 0
	}
	if r != 0 {
		u.ifs[r].p = 0
	}
	u.root = u.join(l, r)
	return rank, nil
}

// join two detached trees rooted at l and r, where every key under l is smaller than
// every key under r. Returns the new root.
func (u *SplayTree[S]) join(l, r S) S {
	if r == 0 {
		return l
	}
	if l == 0 {
		return r
	}
	m := l
	for u.ifs[m].r != 0 {
		m = u.ifs[m].r
	}
	u.splay(m)
	u.setRight(m, r)
	return m
}

// DeleteKth removes the live key with rank r, that is the key with exactly r smaller
// live keys, and returns it. It's the inverse of SelectRankAndDelete.
// Returns ErrRankOutOfRange if r >= Size().
// Time: amortized O(log n)
func (u *SplayTree[S]) DeleteKth(r S) (S, error) {
	i := u.kth(r)
	if i == 0 {
		return 0, fmt.Errorf("%w: %d of %d", ErrRankOutOfRange, r, u.size)
	}
	if _, err := u.SelectRankAndDelete(i - 1); err != nil {
		panic(InvariantViolation("reachable node missing from the index"))
	}
	return i - 1, nil
}

// kth returns the slot of rank r, or 0 if there isn't one.
func (u *SplayTree[S]) kth(r S) S {
	if r >= u.size {
		return 0
	}
	curI := u.root
	for curI != 0 {
		if lsz := u.ifs[curI].lsz; r < lsz {
			curI = u.ifs[curI].l
		} else if r > lsz {
			r -= lsz + 1
			curI = u.ifs[curI].r
		} else {
			break
		}
	}
	return curI
}

// Size returns the number of keys in the tree.
// Time: O(1); Space: O(1)
func (u *SplayTree[S]) Size() S {
	return u.size
}

// Has key k.
// Time: O(1); Space: O(1)
func (u *SplayTree[S]) Has(k S) bool {
	_, err := u.slot(k)
	return err == nil
}

// Root returns the key at the root, false if the tree is empty.
func (u *SplayTree[S]) Root() (S, bool) {
	if u.root == 0 {
		return 0, false
	}
	return u.root - 1, true
}
