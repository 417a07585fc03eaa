package fd

import "docprofile/bitset"

// Threshold is the violation threshold for accepting a dependency: the
// fraction of documents marked as violating must be strictly less than
// 1-Threshold.
const Threshold = 0.99

// isFD applies the greedy first-touch violation count to a bitmap of
// violating document pairs (encoded via bitset.PairIndex), and reports
// whether the violation ratio stays under 1-Threshold.
//
// The rule walks violating pairs in ascending pair-index order; a document
// is marked "violating" the first time it appears in an as-yet-unmarked
// pair. This is a greedy approximation of a minimum vertex cover of the
// violation graph, not an exact one, and is deliberately order-dependent:
// ascending pair-index order is the fixed, reproducible choice.
func isFD(violations *bitset.RoaringBitmap, n int) bool {
	if n == 0 {
		return true
	}

	marked := bitset.NewBitSet(n)
	markedCount := 0

	it := violations.Iterator()
	for it.Next() {
		i, j := bitset.SplitPairIndex(int(it.Value()))
		iMarked, _ := marked.Test(i)
		jMarked, _ := marked.Test(j)
		if !iMarked && !jMarked {
			marked.Set(i)
			marked.Set(j)
			markedCount += 2
		}
	}

	return float64(markedCount)/float64(n) < 1-Threshold
}
