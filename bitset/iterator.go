package bitset

import "sort"

// Iterator walks the members of a RoaringBitmap in ascending order. The FD
// engine's greedy violation count (isFD) depends on visiting pair-indices in
// increasing order, which is why this returns a stepper rather than a slice.
type Iterator struct {
	bitmap     *RoaringBitmap
	keys       []uint16
	currentKey int
	container  RoaringContainer
	index      int
	value      uint32
}

// Iterator returns an ascending-order iterator over rb's members.
func (rb *RoaringBitmap) Iterator() *Iterator {
	keys := make([]uint16, 0, len(rb.containers))
	for key := range rb.containers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return &Iterator{
		bitmap:     rb,
		keys:       keys,
		currentKey: -1,
		index:      -1,
	}
}

// Next advances the iterator and reports whether a value is available.
func (it *Iterator) Next() bool {
	for {
		if it.container == nil || it.index >= it.container.Cardinality()-1 {
			it.currentKey++
			if it.currentKey >= len(it.keys) {
				return false
			}
			it.container = it.bitmap.containers[it.keys[it.currentKey]]
			it.index = -1
			continue
		}

		it.index++
		base := uint32(it.keys[it.currentKey]) << 16
		switch c := it.container.(type) {
		case *ArrayContainer:
			it.value = base | uint32(c.values[it.index])
		case *BitmapContainer:
			it.value = base | uint32(nthSetBit(c.Bitmap, it.index))
		}
		return true
	}
}

// Value returns the member the iterator currently points to.
func (it *Iterator) Value() uint32 {
	return it.value
}

func nthSetBit(words []uint64, n int) int {
	count := 0
	for i, word := range words {
		if word == 0 {
			continue
		}
		for bit := 0; bit < 64; bit++ {
			if word&(1<<uint(bit)) != 0 {
				if count == n {
					return i*64 + bit
				}
				count++
			}
		}
	}
	return -1
}
