// Package fd implements a TANE-style level-wise lattice search for
// functional dependencies over path sets collected by the collect package.
//
// Each lattice element tracks an agreement bitmap, a candidate
// right-hand-side set (C+), and whether it is still active in the search.
// Levels are built prefix-block by prefix-block, candidates are pruned once
// their C+ collapses to empty, and the whole search runs single-threaded:
// candidate evaluation does not parallelize across goroutines.
package fd

import (
	"fmt"
	"sort"
	"strings"

	"docprofile/bitset"
	"docprofile/collect"
)

// Dependency is one confirmed functional dependency lhs -> rhs.
type Dependency struct {
	LHS []string
	RHS string
}

func (d Dependency) String() string {
	quoted := make([]string, len(d.LHS))
	for i, path := range d.LHS {
		quoted[i] = fmt.Sprintf("%q", path)
	}
	return fmt.Sprintf("[%s] -> %s", strings.Join(quoted, ", "), d.RHS)
}

// element is one lattice node: its candidate right-hand-side set (called C+
// in TANE) and whether it is still active in the search (valid) or retained
// only to seed later levels' C+ computation.
type element struct {
	set   pathSet
	cplus *bitset.RoaringBitmap
	valid bool
}

// Discover runs the FD search over result and returns every confirmed
// dependency. Paths already exclude constants (collect.CollectFD drops
// them); result.Partitions gives, for each path, the value-indexed doc-id
// bitsets used to build each singleton's agreement bitmap.
func Discover(result collect.FDResult, docCount int) []Dependency {
	paths := result.Paths.Values()
	p := len(paths)
	if p == 0 || docCount < 2 {
		return nil
	}

	agree := make(map[string]*bitset.RoaringBitmap)

	emptySet := pathSet{}
	agree[emptySet.key()] = allPairsBitmap(docCount)

	for pathIdx := 0; pathIdx < p; pathIdx++ {
		agree[singleton(pathIdx).key()] = singletonAgreement(result.Partitions[pathIdx])
	}

	level0 := map[string]*element{
		emptySet.key(): {set: emptySet, cplus: fullBitmap(p), valid: true},
	}
	level1 := make(map[string]*element, p)
	for pathIdx := 0; pathIdx < p; pathIdx++ {
		s := singleton(pathIdx)
		level1[s.key()] = &element{set: s, cplus: bitset.New(), valid: true}
	}

	all := allPaths(p)
	var deps []Dependency

	prevLevel, level := level0, level1
	for i := 0; i < p && len(level) > 0; i++ {
		computeDependencies(prevLevel, level, agree, all, docCount, paths, &deps)
		prune(level, agree, all, docCount, paths, &deps)
		if len(level) == 0 {
			break
		}
		prevLevel = level
		level = generateNextLevel(level, agree)
		if len(level) == 0 {
			break
		}
	}

	return deps
}

func fullBitmap(p int) *bitset.RoaringBitmap {
	bm := bitset.New()
	for i := 0; i < p; i++ {
		bm.Add(uint32(i))
	}
	return bm
}

func allPairsBitmap(n int) *bitset.RoaringBitmap {
	bm := bitset.New()
	max := bitset.MaxPairIndex(n)
	for i := 0; i < max; i++ {
		bm.Add(uint32(i))
	}
	return bm
}

// singletonAgreement builds the pairwise-agreement bitmap for a single path:
// bit PairIndex(i,j) is set whenever documents i and j share a value at that
// path, i.e. whenever i and j both appear in the same value's doc-id bitset.
func singletonAgreement(byValue map[int]*bitset.RoaringBitmap) *bitset.RoaringBitmap {
	bm := bitset.New()
	for _, docIDs := range byValue {
		members := docIDs.Values()
		for a := 0; a < len(members); a++ {
			for b := a + 1; b < len(members); b++ {
				bm.Add(uint32(bitset.PairIndex(int(members[a]), int(members[b]))))
			}
		}
	}
	return bm
}

func bitmapFromSet(s pathSet) *bitset.RoaringBitmap {
	bm := bitset.New()
	for _, v := range s {
		bm.Add(uint32(v))
	}
	return bm
}

func setFromBitmap(bm *bitset.RoaringBitmap) pathSet {
	values := bm.Values()
	out := make(pathSet, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

func pathNames(s pathSet, paths []string) []string {
	names := make([]string, len(s))
	for i, idx := range s {
		names[i] = paths[idx]
	}
	sort.Strings(names)
	return names
}

// computeDependencies implements COMPUTE_DEPENDENCIES from TANE: it first
// seeds each level element's C+ from its immediate subsets in prevLevel,
// then checks every candidate RHS in X ∩ C+(X).
func computeDependencies(
	prevLevel, level map[string]*element,
	agree map[string]*bitset.RoaringBitmap,
	all pathSet,
	n int,
	paths []string,
	deps *[]Dependency,
) {
	for _, el := range level {
		el.cplus = initCPlus(el.set, prevLevel)
	}

	for _, el := range level {
		if !el.valid {
			continue
		}
		for _, a := range el.set {
			if !el.cplus.Contains(uint32(a)) {
				continue
			}
			lhs := el.set.without(a)
			lhsAgree, ok := agree[lhs.key()]
			if !ok {
				continue
			}
			rhsAgree := agree[singleton(a).key()]
			violations := lhsAgree.Difference(rhsAgree)
			if isFD(violations, n) {
				*deps = append(*deps, Dependency{LHS: pathNames(lhs, paths), RHS: paths[a]})
				toRemove := union(singleton(a), difference(all, el.set))
				el.cplus = el.cplus.Difference(bitmapFromSet(toRemove))
			}
		}
	}
}

// initCPlus computes C+(X) = ⋂_{A∈X} C+(X\{A}), with any missing subset
// term treated as an empty contribution.
func initCPlus(x pathSet, prevLevel map[string]*element) *bitset.RoaringBitmap {
	var result *bitset.RoaringBitmap
	for _, a := range x {
		subKey := x.without(a).key()
		prevEl, ok := prevLevel[subKey]
		var term *bitset.RoaringBitmap
		if ok {
			term = prevEl.cplus
		} else {
			term = bitset.New()
		}
		if result == nil {
			result = term
		} else {
			result = result.Intersection(term)
		}
	}
	if result == nil {
		return bitset.New()
	}
	return result
}
