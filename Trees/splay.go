package Trees

// splayStep moves x one or two levels closer to the root, depending on where
// x and its parent y sit under the grandparent z. It does nothing if x is already a root.
func (u *SplayTree[S]) splayStep(x S) {
	y := u.ifs[x].p
	if y == 0 {
		return
	}
	z := u.ifs[y].p
	yi := &u.ifs[y]
	switch {
	case z == 0 && yi.l == x: // zig
		u.rotateRight(y)
	case z == 0 && yi.r == x: // zig
		u.rotateLeft(y)
	case u.ifs[z].l == y && yi.l == x: // zig-zig
		u.rotateRight(z)
		u.rotateRight(y)
	case u.ifs[z].r == y && yi.r == x: // zig-zig
		u.rotateLeft(z)
		u.rotateLeft(y)
	case u.ifs[z].l == y && yi.r == x: // zig-zag
		u.rotateLeft(y)
		u.rotateRight(z)
	case u.ifs[z].r == y && yi.l == x: // zig-zag
		u.rotateRight(y)
		u.rotateLeft(z)
	default:
		panic(InvariantViolation("splay step on a node detached from its parent"))
	}
}

// splay x until it is the root of whatever tree it belongs to. That tree may be a
// subtree detached from u.root, as in join.
// Time: amortized O(log n)
func (u *SplayTree[S]) splay(x S) {
	for u.ifs[x].p != 0 {
		u.splayStep(x)
	}
}

// splayKey looks up the slot of k and splays it to the root.
func (u *SplayTree[S]) splayKey(k S) (S, error) {
	i, err := u.slot(k)
	if err != nil {
		return 0, err
	}
	u.splay(i)
	return i, nil
}
