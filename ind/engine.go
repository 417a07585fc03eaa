// Package ind discovers inclusion dependencies between the per-path value
// sets collected by the collect package: pairs (p, q) where values(p) is a
// subset of values(q), exactly or within an overlap threshold.
//
// Every unordered path pair is evaluated independently, so the search fans
// out across a bounded worker pool (pool.go) rather than running serially.
package ind

import (
	"context"
	"fmt"
	"sync"

	"docprofile/collect"
)

// Pair is one discovered inclusion dependency: values(LHS) ⊆ values(RHS).
type Pair struct {
	LHS string
	RHS string
}

func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.LHS, p.RHS)
}

// Options configures the overlap test. Threshold is only consulted when
// Approximate is true; its zero value is meaningless, so callers should
// default it to 0.9.
type Options struct {
	Approximate bool
	Threshold   float64
}

// NewINDEngine validates opts (an approximate-mode threshold must lie in
// [0, 1]) and returns a ready-to-run engine over result.
func NewINDEngine(result collect.INDResult, opts Options) (*Engine, error) {
	if opts.Approximate && (opts.Threshold < 0 || opts.Threshold > 1) {
		return nil, fmt.Errorf("ind: threshold must be within [0, 1], got %v", opts.Threshold)
	}
	return &Engine{result: result, opts: opts}, nil
}

// Engine runs the pairwise overlap search.
type Engine struct {
	result collect.INDResult
	opts   Options
}

// Discover returns every inclusion dependency found across all unordered
// path pairs, evaluated concurrently over a bounded worker pool.
func (e *Engine) Discover(ctx context.Context) []Pair {
	paths := e.result.Paths.Values()
	n := len(paths)
	if n < 2 {
		return nil
	}

	pool := newWorkerPool()
	var mu sync.Mutex
	var pairs []Pair

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			pool.Go(ctx, func() {
				found := e.evaluate(i, j, paths)
				if len(found) == 0 {
					return
				}
				mu.Lock()
				pairs = append(pairs, found...)
				mu.Unlock()
			})
		}
	}
	pool.Wait()

	return pairs
}

func (e *Engine) evaluate(i, j int, paths []string) []Pair {
	valuesI := e.result.ValueSets[i]
	valuesJ := e.result.ValueSets[j]
	if valuesI == nil || valuesJ == nil {
		return nil
	}

	overlap := valuesI.Intersection(valuesJ).Cardinality()
	cardI := valuesI.Cardinality()
	cardJ := valuesJ.Cardinality()

	var found []Pair
	if e.opts.Approximate {
		if cardI > 0 && float64(overlap)/float64(cardI) >= e.opts.Threshold {
			found = append(found, Pair{LHS: paths[i], RHS: paths[j]})
		}
		if cardJ > 0 && float64(overlap)/float64(cardJ) >= e.opts.Threshold {
			found = append(found, Pair{LHS: paths[j], RHS: paths[i]})
		}
		return found
	}

	if cardI > 0 && overlap == cardI {
		found = append(found, Pair{LHS: paths[i], RHS: paths[j]})
	}
	if cardJ > 0 && overlap == cardJ {
		found = append(found, Pair{LHS: paths[j], RHS: paths[i]})
	}
	return found
}
