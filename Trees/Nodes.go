package Trees

import "golang.org/x/exp/constraints"

// A node in the SplayTree arena.
// The key of the node at slot i is i-1. Slot 0 is the nil loopback and its
// zero value must never be overwritten: l, r, p == 0 all mean "no node".
type info[S constraints.Unsigned] struct {
	l, r, p S
	lsz     S // number of nodes in the left subtree.
}

// setLeft sets the left child of p to c and points c back at p.
// p mustn't be 0.
func (u *SplayTree[S]) setLeft(p, c S) {
	u.ifs[p].l = c
	if c != 0 {
		u.ifs[c].p = p
	}
}

// setRight is the mirror of setLeft.
func (u *SplayTree[S]) setRight(p, c S) {
	u.ifs[p].r = c
	if c != 0 {
		u.ifs[c].p = p
	}
}

// swapChild replaces the child old of p with n. When p is 0, old was a root
// and n becomes u.root.
func (u *SplayTree[S]) swapChild(p, old, n S) {
	u.ifs[n].p = p
	if p == 0 {
		u.root = n
	} else if u.ifs[p].l == old {
		u.ifs[p].l = n
	} else if u.ifs[p].r == old {
		u.ifs[p].r = n
	} else {
		panic(InvariantViolation("swap for a node that isn't a child of its parent"))
	}
}

// rotateLeft about x.
//
//	      z                           z
//	     /                           /
//	    y                           x
//	   / \                         / \
//	  x   C    rotateLeft(x)      A   y
//	 / \     <===============        / \
//	A   B                           B   C
//
// Time: O(1); Space: O(1)
func (u *SplayTree[S]) rotateLeft(x S) {
	if x == 0 {
		panic(InvariantViolation("rotate left on an empty tree"))
	}
	y := u.ifs[x].r
	if y == 0 {
		panic(InvariantViolation("rotate left without a right child"))
	}
	u.swapChild(u.ifs[x].p, x, y)
	u.setRight(x, u.ifs[y].l)
	u.setLeft(y, x)
	u.ifs[y].lsz += u.ifs[x].lsz + 1
}

// rotateRight about y, the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *SplayTree[S]) rotateRight(y S) {
	if y == 0 {
		panic(InvariantViolation("rotate right on an empty tree"))
	}
	x := u.ifs[y].l
	if x == 0 {
		panic(InvariantViolation("rotate right without a left child"))
	}
	u.swapChild(u.ifs[y].p, y, x)
	u.setLeft(y, u.ifs[x].r)
	u.setRight(x, y)
	u.ifs[y].lsz -= u.ifs[x].lsz + 1
}
