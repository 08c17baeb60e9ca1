package internal

import (
	"math/bits"
)

// NewBitArray with room for at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a fixed size set of small non-negative integers.
type BitArray struct {
	bits []uint
}

func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

// Get returns false for any i outside [0, Len()).
func (u BitArray) Get(i int) bool {
	if i < 0 || i >= u.Len() {
		return false
	}
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Fill sets the first n bits up.
func (u BitArray) Fill(n int) {
	full := n / bits.UintSize
	for i := range full {
		u.bits[i] = ^uint(0)
	}
	if rem := n % bits.UintSize; rem != 0 {
		u.bits[full] |= 1<<rem - 1
	}
}

// Count of bits that are up.
func (u BitArray) Count() (c int) {
	for _, b := range u.bits {
		c += bits.OnesCount(b)
	}
	return
}
