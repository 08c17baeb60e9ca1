package comparisons

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// oracle answers the same question as Trees.SplayTree.SelectRankAndDelete by
// counting smaller keys in some other ordered container.
type oracle interface {
	rankAndDelete(k int) int
	size() int
}

type bTreeOracle struct{ t *btree.BTreeG[int] }

func newBTreeOracle(n int) oracle {
	t := btree.NewOrderedG[int](32)
	for i := range n {
		t.ReplaceOrInsert(i)
	}
	return bTreeOracle{t}
}
func (o bTreeOracle) rankAndDelete(k int) (c int) {
	o.t.AscendLessThan(k, func(int) bool {
		c++
		return true
	})
	o.t.Delete(k)
	return
}
func (o bTreeOracle) size() int { return o.t.Len() }

type llrbOracle struct{ t *llrb.LLRB }

func newLLRBOracle(n int) oracle {
	t := llrb.New()
	for i := range n {
		t.ReplaceOrInsert(llrb.Int(i))
	}
	return llrbOracle{t}
}
func (o llrbOracle) rankAndDelete(k int) (c int) {
	o.t.AscendLessThan(llrb.Int(k), func(llrb.Item) bool {
		c++
		return true
	})
	o.t.Delete(llrb.Int(k))
	return
}
func (o llrbOracle) size() int { return o.t.Len() }

// arrayListOracle keeps the remaining keys sorted, so a key's index is its rank.
type arrayListOracle struct{ l *arraylist.List }

func newArrayListOracle(n int) oracle {
	l := arraylist.New()
	for i := range n {
		l.Add(i)
	}
	return arrayListOracle{l}
}
func (o arrayListOracle) rankAndDelete(k int) int {
	i := o.l.IndexOf(k)
	o.l.Remove(i)
	return i
}
func (o arrayListOracle) size() int { return o.l.Size() }

type redBlackOracle struct{ t *redblacktree.Tree }

func newRedBlackOracle(n int) oracle {
	t := redblacktree.NewWithIntComparator()
	for i := range n {
		t.Put(i, struct{}{})
	}
	return redBlackOracle{t}
}
func (o redBlackOracle) rankAndDelete(k int) (c int) {
	for it := o.t.Iterator(); it.Next() && it.Key().(int) < k; {
		c++
	}
	o.t.Remove(k)
	return
}
func (o redBlackOracle) size() int { return o.t.Size() }

var oracles = map[string]func(int) oracle{
	"btree":     newBTreeOracle,
	"llrb":      newLLRBOracle,
	"arraylist": newArrayListOracle,
	"redblack":  newRedBlackOracle,
}
