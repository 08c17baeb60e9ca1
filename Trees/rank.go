package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RankSequence builds a tree of the keys 0..n-1, deletes keys in the given order, and
// returns the rank each key had when it was deleted. It stops at the first key that
// isn't in the tree, returning the ranks computed so far along with the error.
func RankSequence[S constraints.Unsigned](n int, keys []S) ([]S, error) {
	u, err := Build[S](n)
	if err != nil {
		return nil, err
	}
	ranks := make([]S, 0, len(keys))
	for i, k := range keys {
		r, err := u.SelectRankAndDelete(k)
		if err != nil {
			return ranks, fmt.Errorf("query %d: %w", i, err)
		}
		ranks = append(ranks, r)
	}
	return ranks, nil
}

// DecodeRanks is the inverse of RankSequence: given the ranks reported while deleting
// keys from a tree of the keys 0..n-1, it returns the deleted keys in order. Ranks
// can describe any prefix of a deletion order, so len(ranks) <= n.
func DecodeRanks[S constraints.Unsigned](n int, ranks []S) ([]S, error) {
	u, err := Build[S](n)
	if err != nil {
		return nil, err
	}
	keys := make([]S, 0, len(ranks))
	for i, r := range ranks {
		k, err := u.DeleteKth(r)
		if err != nil {
			return keys, fmt.Errorf("query %d: %w", i, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
