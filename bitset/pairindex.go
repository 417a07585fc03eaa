package bitset

import "math"

// PairIndex encodes an unordered document-id pair {i, j}, i < j, into a single
// dense integer using the standard triangular-number addressing. It is the
// key used for pairwise-agreement bitmaps in the FD engine: bit PairIndex(i,j)
// set means documents i and j agree on some path set.
func PairIndex(i, j int) int {
	if i > j {
		i, j = j, i
	}
	return j*(j-1)/2 + i
}

// SplitPairIndex is the inverse of PairIndex: given an encoded index it
// recovers the original (i, j) pair with i < j.
func SplitPairIndex(index int) (i, j int) {
	j = int((1 + math.Sqrt(float64(8*index+1))) / 2)
	for j*(j-1)/2 > index {
		j--
	}
	for (j+1)*j/2 <= index {
		j++
	}
	i = index - j*(j-1)/2
	return i, j
}

// MaxPairIndex returns the exclusive upper bound on pair indices for n
// documents, i.e. PairIndex(n-2, n-1) + 1.
func MaxPairIndex(n int) int {
	if n < 2 {
		return 0
	}
	return PairIndex(n-2, n-1) + 1
}
