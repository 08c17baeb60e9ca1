package comparisons

import (
	"math/rand"
	"testing"

	"github.com/g-m-twostay/splay-rank/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	keyN   = 3000
	bKeyN  = 1 << 13
	rounds = 2
)

var rg = rand.New(rand.NewSource(0))

var sideEff int

func TestRanks_AgainstOracles(t *testing.T) {
	for name, mk := range oracles {
		t.Run(name, func(t *testing.T) {
			for range rounds {
				order := rg.Perm(keyN)
				tree, err := Trees.Build[uint32](keyN)
				require.NoError(t, err)
				o := mk(keyN)
				for step, k := range order {
					r, err := tree.SelectRankAndDelete(uint32(k))
					require.NoError(t, err)
					require.Equal(t, o.rankAndDelete(k), int(r), "step %d key %d", step, k)
				}
				assert.Zero(t, tree.Size())
				assert.Zero(t, o.size())
				assert.False(t, tree.Corrupt())
			}
		})
	}
}

func TestRanks_PartialThenInOrder(t *testing.T) {
	tree, err := Trees.Build[uint32](keyN)
	require.NoError(t, err)
	o := newBTreeOracle(keyN).(bTreeOracle)
	for _, k := range rg.Perm(keyN)[:keyN/3] {
		_, err := tree.SelectRankAndDelete(uint32(k))
		require.NoError(t, err)
		o.rankAndDelete(k)
	}
	var got, want []int
	tree.InOrder(func(k uint32) bool {
		got = append(got, int(k))
		return true
	}, nil)
	o.t.Ascend(func(k int) bool {
		want = append(want, k)
		return true
	})
	assert.Equal(t, want, got)
	for r, k := range want {
		kk, ok := tree.KthKey(uint32(r))
		require.True(t, ok)
		require.Equal(t, k, int(kk))
	}
}

func TestDecode_AgainstOracle(t *testing.T) {
	order := rg.Perm(keyN)
	o := newArrayListOracle(keyN)
	ranks := make([]uint32, keyN)
	for i, k := range order {
		ranks[i] = uint32(o.rankAndDelete(k))
	}
	keys, err := Trees.DecodeRanks(keyN, ranks)
	require.NoError(t, err)
	for i := range order {
		require.Equal(t, order[i], int(keys[i]))
	}
}

func benchOracle(b *testing.B, mk func(int) oracle) {
	order := rg.Perm(bKeyN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		o := mk(bKeyN)
		b.StartTimer()
		for _, k := range order {
			sideEff = o.rankAndDelete(k)
		}
	}
}

func BenchmarkSplay_RankAndDelete(b *testing.B) {
	order := rg.Perm(bKeyN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree, _ := Trees.Build[uint32](bKeyN)
		b.StartTimer()
		for _, k := range order {
			r, _ := tree.SelectRankAndDelete(uint32(k))
			sideEff = int(r)
		}
	}
}

func BenchmarkBTree_RankAndDelete(b *testing.B) {
	benchOracle(b, newBTreeOracle)
}

func BenchmarkLLRB_RankAndDelete(b *testing.B) {
	benchOracle(b, newLLRBOracle)
}

func BenchmarkArrayList_RankAndDelete(b *testing.B) {
	benchOracle(b, newArrayListOracle)
}

func BenchmarkRedBlack_RankAndDelete(b *testing.B) {
	benchOracle(b, newRedBlackOracle)
}
