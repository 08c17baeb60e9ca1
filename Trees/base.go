package Trees

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// InOrder traversal of the tree, calling f with each key in ascending order until f
// returns false. st is the stack used during the traversal; it's returned so that it
// can be reused, and may be nil. The traversal doesn't splay.
// Time: O(n); Space: O(D)
func (u *SplayTree[S]) InOrder(f func(S) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI - 1) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// RankOf k: the number of keys in the tree smaller than k. Returns false if k isn't in
// the tree. Unlike SelectRankAndDelete it neither splays nor removes k, so it costs the
// depth of k.
// Time: O(D); Space: O(1)
func (u *SplayTree[S]) RankOf(k S) (S, bool) {
	i, err := u.slot(k)
	if err != nil {
		return 0, false
	}
	ra := u.ifs[i].lsz
	for p := u.ifs[i].p; p != 0; i, p = p, u.ifs[p].p {
		if u.ifs[p].r == i {
			ra += u.ifs[p].lsz + 1
		}
	}
	return ra, true
}

// KthKey returns the key of rank r, starting from 0. Returns false if r >= Size().
// Time: O(D); Space: O(1)
func (u *SplayTree[S]) KthKey(r S) (S, bool) {
	if i := u.kth(r); i != 0 {
		return i - 1, true
	}
	return 0, false
}

// MaxDepth is the number of nodes on the longest root to leaf path; 0 for an empty tree.
func (u *SplayTree[S]) MaxDepth() S {
	var d S
	if u.root == 0 {
		return d
	}
	st := [][2]S{{u.root, 1}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		d = max(d, top[1])
		if l := u.ifs[top[0]].l; l != 0 {
			st = append(st, [2]S{l, top[1] + 1})
		}
		if r := u.ifs[top[0]].r; r != 0 {
			st = append(st, [2]S{r, top[1] + 1})
		}
	}
	return d
}

// Corrupt reports whether the tree breaks any of its structural properties: parent
// and child links that disagree, keys out of search order, cached left subtree sizes
// that don't match the real ones, or an index that disagrees with the reachable nodes.
// Time: O(n); Space: O(n)
func (u *SplayTree[S]) Corrupt() bool {
	if u.ifs == nil {
		return u.root != 0 || u.size != 0
	}
	if u.root >= S(len(u.ifs)) || u.ifs[0] != (info[S]{}) || u.ifs[u.root].p != 0|| u.live.Count() != int(u.size) {
		return true
	}
	// preorder; every node must be reached exactly once.
	pre := make([]S, 0, u.size)
	if u.root != 0 {
		pre = append(pre, u.root)
	}
	for j := 0; j < len(pre); j++ {
		i := pre[j]
		if !u.live.Get(int(i-1)) || S(len(pre)) > u.size {
			return true
		}
		for _, c := range [2]S{u.ifs[i].l, u.ifs[i].r} {
			if c != 0 {
				if c >= S(len(u.ifs)) || u.ifs[c].p != i {
					return true
				}
				pre = append(pre, c)
			}
		}
	}
	if S(len(pre)) != u.size {
		return true
	}
	sz := make([]S, len(u.ifs))
	for j := len(pre) - 1; j > -1; j-- {
		i := pre[j]
		if u.ifs[i].lsz != sz[u.ifs[i].l] {
			return true
		}
		sz[i] = sz[u.ifs[i].l] + sz[u.ifs[i].r] + 1
	}
	first, prev, ordered := true, S(0), true
	u.InOrder(func(k S) bool {
		if !first && k <= prev {
			ordered = false
		}
		first, prev = false, k
		return ordered
	}, nil)
	return !ordered
}

type strItem[S constraints.Unsigned] struct {
	i S
	c byte // when not 0, write c instead of a node.
}

// String serializes the tree in preorder as key(left)(right). A leaf is only its key,
// and the right group is left out when the right subtree is empty. For debugging.
func (u *SplayTree[S]) String() string {
	var sb strings.Builder
	st := make([]strItem[S], 0, 16)
	if u.root != 0 {
		st = append(st, strItem[S]{i: u.root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.c != 0 {
			sb.WriteByte(top.c)
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(top.i-1), 10))
		cur := u.ifs[top.i]
		if cur.l == 0 && cur.r == 0 {
			continue
		}
		if cur.r != 0 {
			st = append(st, strItem[S]{c: ')'}, strItem[S]{i: cur.r}, strItem[S]{c: '('})
		}
		st = append(st, strItem[S]{c: ')'})
		if cur.l != 0 {
			st = append(st, strItem[S]{i: cur.l})
		}
		st = append(st, strItem[S]{c: '('})
	}
	return sb.String()
}
