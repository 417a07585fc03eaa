package fd

import (
	"sort"

	"docprofile/bitset"
)

// generateNextLevel builds level k+1 from level k: partition level k into
// prefix blocks, then for every pair within a block union their sets and
// keep the union if every one of its immediate subsets is present at level
// k (the apriori inclusion test).
func generateNextLevel(level map[string]*element, agree map[string]*bitset.RoaringBitmap) map[string]*element {
	next := make(map[string]*element)

	for _, block := range prefixBlocks(level) {
		for i := 0; i < len(block); i++ {
			for j := i + 1; j < len(block); j++ {
				y, z := block[i], block[j]
				x := union(y.set, z.set)
				if !checkIncluded(x, level) {
					continue
				}

				key := x.key()
				if _, exists := next[key]; exists {
					continue
				}

				yAgree := agree[y.set.key()]
				zAgree := agree[z.set.key()]
				agree[key] = yAgree.Intersection(zAgree)

				next[key] = &element{set: x, cplus: bitset.New(), valid: true}
			}
		}
	}

	return next
}

// checkIncluded implements line 5 of TANE's GENERATE_NEXT_LEVEL: x is only
// admitted into the next level if every x\{a} is already present at the
// current level.
func checkIncluded(x pathSet, level map[string]*element) bool {
	for _, a := range x {
		if _, ok := level[x.without(a).key()]; !ok {
			return false
		}
	}
	return true
}

// prefixBlocks groups the elements of a level into maximal runs that share
// every member but the last, after sorting all sets lexicographically.
func prefixBlocks(level map[string]*element) [][]*element {
	elems := make([]*element, 0, len(level))
	for _, el := range level {
		elems = append(elems, el)
	}
	sort.Slice(elems, func(i, j int) bool { return lessPathSet(elems[i].set, elems[j].set) })

	var blocks [][]*element
	for _, el := range elems {
		if len(blocks) == 0 {
			blocks = append(blocks, []*element{el})
			continue
		}
		last := blocks[len(blocks)-1]
		if samePrefix(last[len(last)-1].set, el.set) {
			blocks[len(blocks)-1] = append(last, el)
		} else {
			blocks = append(blocks, []*element{el})
		}
	}
	return blocks
}
