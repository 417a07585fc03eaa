package collect

import (
	"docprofile/bitset"
	"docprofile/document"
)

// FDResult is the per-path value partition the FD engine searches over.
// Constant paths (every observation at the path has the same value) are excluded from
// Paths and Partitions entirely: they carry no information for FD discovery
// and would otherwise sit in both every LHS and every RHS.
type FDResult struct {
	Paths      *InternTable
	Values     *InternTable
	Partitions map[int]map[int]*bitset.RoaringBitmap // path index -> value index -> doc-id bitset
}

type fdAccumulator struct {
	allPaths   *InternTable
	values     *InternTable
	firstValue map[int]int
	constant   map[int]bool
	partitions map[int]map[int]*bitset.RoaringBitmap
}

// CollectFD walks every record and builds the non-constant path partitions
// used by the FD engine.
func CollectFD(records []document.Record) FDResult {
	acc := &fdAccumulator{
		allPaths:   NewInternTable(),
		values:     NewInternTable(),
		firstValue: make(map[int]int),
		constant:   make(map[int]bool),
		partitions: make(map[int]map[int]*bitset.RoaringBitmap),
	}

	for _, rec := range records {
		acc.walk(rec.DocID, "", rec.Value)
	}

	result := FDResult{
		Paths:      NewInternTable(),
		Values:     acc.values,
		Partitions: make(map[int]map[int]*bitset.RoaringBitmap),
	}
	for _, name := range acc.allPaths.Values() {
		pIdx, _ := acc.allPaths.Index(name)
		if acc.constant[pIdx] {
			continue
		}
		newIdx := result.Paths.Intern(name)
		result.Partitions[newIdx] = acc.partitions[pIdx]
	}
	return result
}

func (acc *fdAccumulator) walk(docID uint32, path string, v document.Value) {
	switch v.Kind {
	case document.KindObject:
		for _, k := range v.SortedKeys() {
			acc.walk(docID, joinPath(path, k), v.Object[k])
		}
	case document.KindArray:
		for _, elem := range v.Array {
			acc.walk(docID, path+"[]", elem)
		}
	case document.KindScalar:
		if v.Scalar == "" {
			return
		}
		acc.record(docID, path, v.Scalar)
	}
}

func (acc *fdAccumulator) record(docID uint32, path, scalar string) {
	pIdx := acc.allPaths.Intern(path)
	vIdx := acc.values.Intern(scalar)

	if first, seen := acc.firstValue[pIdx]; !seen {
		acc.firstValue[pIdx] = vIdx
		acc.constant[pIdx] = true
	} else if first != vIdx {
		acc.constant[pIdx] = false
	}

	byValue, ok := acc.partitions[pIdx]
	if !ok {
		byValue = make(map[int]*bitset.RoaringBitmap)
		acc.partitions[pIdx] = byValue
	}
	docIDs, ok := byValue[vIdx]
	if !ok {
		docIDs = bitset.New()
		byValue[vIdx] = docIDs
	}
	docIDs.Add(docID)
}
