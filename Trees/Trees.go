package Trees

import "golang.org/x/exp/constraints"

// Ranker is a set of keys from a dense range that answers, for each key it removes,
// how many smaller keys were still present at that moment.
// Methods returning a bool as the second value use it to tell whether the first value
// is defined. Methods returning an error return one of the sentinel errors of this
// package, wrapped, and leave the set untouched in that case.
type Ranker[S constraints.Unsigned] interface {
	//SelectRankAndDelete removes k and returns the number of keys smaller
	//than k that were present right before the removal.
	SelectRankAndDelete(k S) (S, error)
	//DeleteKth removes and returns the key with exactly r smaller keys.
	//0<=r<Size().
	DeleteKth(r S) (S, error)
	//RankOf k without removing it.
	RankOf(k S) (S, bool)
	//KthKey finds the key with exactly r smaller keys.
	KthKey(r S) (S, bool)
	//Has key k.
	Has(k S) bool
	//Size of the set.
	Size() S
	//InOrder calls f on the keys in ascending order until f returns false.
	//st is an optional reusable stack buffer.
	InOrder(f func(S) bool, st []S) []S
	//Corrupt returns whether the structure violates its own invariants.
	//This is to be distinguished from whether it's balanced or not.
	Corrupt() bool
	String() string
}

var _ Ranker[uint] = (*SplayTree[uint])(nil)
