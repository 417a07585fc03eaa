// Package collect traverses hierarchical document values and builds the
// interned, bitmap-backed structures the FD and IND engines operate on: a
// per-path value partition (doc-id bitsets keyed by value) for FD, and a
// per-path value set for IND. FD traversal tags array elements with a "[]"
// marker; IND traversal uses "[*]" since it doesn't distinguish array index.
// Null values and empty scalars are skipped in both.
package collect

// InternTable assigns dense, stable indices to strings in first-observation
// order and supports lookup in both directions.
type InternTable struct {
	indices map[string]int
	ordered []string
}

// NewInternTable returns an empty InternTable.
func NewInternTable() *InternTable {
	return &InternTable{indices: make(map[string]int)}
}

// Intern returns s's index, assigning a new one if s has not been seen before.
func (t *InternTable) Intern(s string) int {
	if idx, ok := t.indices[s]; ok {
		return idx
	}
	idx := len(t.ordered)
	t.indices[s] = idx
	t.ordered = append(t.ordered, s)
	return idx
}

// Index looks up s's index without interning it.
func (t *InternTable) Index(s string) (int, bool) {
	idx, ok := t.indices[s]
	return idx, ok
}

// Value returns the string assigned to idx.
func (t *InternTable) Value(idx int) string {
	return t.ordered[idx]
}

// Len returns the number of distinct strings interned.
func (t *InternTable) Len() int {
	return len(t.ordered)
}

// Values returns every interned string in index order.
func (t *InternTable) Values() []string {
	return t.ordered
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
