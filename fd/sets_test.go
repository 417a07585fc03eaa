package fd

import "testing"

func TestPathSetUnionDifference(t *testing.T) {
	a := pathSet{1, 3, 5}
	b := pathSet{3, 4}

	u := union(a, b)
	want := pathSet{1, 3, 4, 5}
	if len(u) != len(want) {
		t.Fatalf("expected %v, got %v", want, u)
	}
	for i := range want {
		if u[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, u)
		}
	}

	d := difference(a, b)
	if len(d) != 2 || d[0] != 1 || d[1] != 5 {
		t.Fatalf("expected [1 5], got %v", d)
	}
}

func TestSamePrefixDiffersOnlyInLastElement(t *testing.T) {
	if !samePrefix(pathSet{1, 2, 3}, pathSet{1, 2, 4}) {
		t.Error("expected sets differing only in the last element to share a prefix")
	}
	if samePrefix(pathSet{1, 2, 3}, pathSet{1, 5, 3}) {
		t.Error("did not expect sets differing in a non-last element to share a prefix")
	}
	if samePrefix(pathSet{}, pathSet{}) {
		t.Error("did not expect two empty sets to share a prefix")
	}
}

func TestPathSetKeyIsStableUnderEquivalentSets(t *testing.T) {
	a := pathSet{1, 2, 3}
	b := pathSet{1, 2, 3}
	if a.key() != b.key() {
		t.Errorf("expected identical sets to produce identical keys: %q vs %q", a.key(), b.key())
	}
}
