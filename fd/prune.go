package fd

import "docprofile/bitset"

// prune implements the TANE PRUNE procedure: remove lattice elements whose
// C+ has gone empty, and for elements that still pass the "almost-key"
// violation test on their own agreement bitmap, try to extend them into a
// confirmed key-style dependency and mark them invalid (kept only to seed
// later levels' C+).
func prune(
	level map[string]*element,
	agree map[string]*bitset.RoaringBitmap,
	all pathSet,
	n int,
	paths []string,
	deps *[]Dependency,
) {
	var toRemove []string
	type invalidation struct {
		key   string
		cplus *bitset.RoaringBitmap
	}
	var invalidations []invalidation

	for key, el := range level {
		if el.cplus.Cardinality() == 0 {
			toRemove = append(toRemove, key)
			continue
		}

		if !el.valid {
			continue
		}

		xAgree, ok := agree[key]
		if !ok || !isFD(xAgree, n) {
			continue
		}

		candidates := setFromBitmap(el.cplus.Difference(bitmapFromSet(el.set)))
		for _, a := range candidates {
			extended := union(el.set, singleton(a))
			intersect := cPlusIntersectionOverRemovals(extended, el.set, level)
			if intersect == nil || !intersect.Contains(uint32(a)) {
				continue
			}

			*deps = append(*deps, Dependency{LHS: pathNames(el.set, paths), RHS: paths[a]})
			toDrop := union(singleton(a), difference(all, el.set))
			invalidations = append(invalidations, invalidation{
				key:   key,
				cplus: el.cplus.Difference(bitmapFromSet(toDrop)),
			})
		}
	}

	for _, inv := range invalidations {
		el := level[inv.key]
		el.cplus = inv.cplus
		el.valid = false
	}
	for _, key := range toRemove {
		delete(level, key)
	}
}

// cPlusIntersectionOverRemovals computes ⋂_{B∈x} C+((extended)\{B}), used by
// prune to test whether a is still a viable key extension of x. A missing
// subset term makes the whole intersection empty.
func cPlusIntersectionOverRemovals(extended, x pathSet, level map[string]*element) *bitset.RoaringBitmap {
	var result *bitset.RoaringBitmap
	for _, b := range x {
		subKey := extended.without(b).key()
		el, ok := level[subKey]
		if !ok {
			return bitset.New()
		}
		if result == nil {
			result = el.cplus
		} else {
			result = result.Intersection(el.cplus)
		}
	}
	return result
}
