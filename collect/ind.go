package collect

import (
	"docprofile/bitset"
	"docprofile/document"
	"docprofile/flatten"
)

// INDResult is the per-path value set the IND engine computes overlap over.
type INDResult struct {
	Paths     *InternTable
	Values    *InternTable
	ValueSets map[int]*bitset.RoaringBitmap // path index -> value-index bitset
}

func newINDResult() INDResult {
	return INDResult{
		Paths:     NewInternTable(),
		Values:    NewInternTable(),
		ValueSets: make(map[int]*bitset.RoaringBitmap),
	}
}

func (r *INDResult) record(path, scalar string) {
	pIdx := r.Paths.Intern(path)
	vIdx := r.Values.Intern(scalar)
	set, ok := r.ValueSets[pIdx]
	if !ok {
		set = bitset.New()
		r.ValueSets[pIdx] = set
	}
	set.Add(uint32(vIdx))
}

// CollectINDDynamic walks each hierarchical value directly, using the "[*]"
// array marker, without ever materializing a flat record.
func CollectINDDynamic(records []document.Record) INDResult {
	result := newINDResult()
	for _, rec := range records {
		walkIND(&result, "", rec.Value)
	}
	return result
}

func walkIND(result *INDResult, path string, v document.Value) {
	switch v.Kind {
	case document.KindObject:
		for _, k := range v.SortedKeys() {
			walkIND(result, joinPath(path, k), v.Object[k])
		}
	case document.KindArray:
		for _, elem := range v.Array {
			walkIND(result, path+"[*]", elem)
		}
	case document.KindScalar:
		if v.Scalar == "" {
			return
		}
		result.record(path, v.Scalar)
	}
}

// CollectINDStatic flattens each document first and records every flat
// record's path/value pairs into one shared stream. Flat records are not
// assigned independent document ids, so static-mode results reflect
// aggregated value-set containment rather than per-document containment.
func CollectINDStatic(records []document.Record) INDResult {
	result := newINDResult()
	for _, rec := range records {
		for _, flat := range flatten.Flatten(rec.Value) {
			for path, scalar := range flat {
				if scalar == "" {
					continue
				}
				result.record(path, scalar)
			}
		}
	}
	return result
}
