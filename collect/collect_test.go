package collect

import (
	"strings"
	"testing"

	"docprofile/document"
)

func mustIngest(t *testing.T, lines ...string) []document.Record {
	t.Helper()
	records, err := document.Ingest(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("unexpected ingest error: %v", err)
	}
	return records
}

func TestCollectFDExcludesConstantPath(t *testing.T) {
	records := mustIngest(t,
		`{"a":1,"b":1}`,
		`{"a":2,"b":1}`,
		`{"a":3,"b":1}`,
	)

	result := CollectFD(records)

	if _, ok := result.Paths.Index("b"); ok {
		t.Errorf("expected constant path %q to be excluded", "b")
	}
	if _, ok := result.Paths.Index("a"); !ok {
		t.Errorf("expected non-constant path %q to be present", "a")
	}
}

func TestCollectFDPartitionsDocIDsByValue(t *testing.T) {
	records := mustIngest(t,
		`{"a":1}`,
		`{"a":1}`,
		`{"a":2}`,
	)

	result := CollectFD(records)
	aIdx, _ := result.Paths.Index("a")
	oneIdx, _ := result.Values.Index("1")

	bitmap, ok := result.Partitions[aIdx][oneIdx]
	if !ok {
		t.Fatal("expected a partition entry for value 1")
	}
	if bitmap.Cardinality() != 2 {
		t.Errorf("expected 2 documents sharing value 1, got %d", bitmap.Cardinality())
	}
}

func TestCollectFDArrayMarker(t *testing.T) {
	records := mustIngest(t, `{"tags":[1,2]}`)
	result := CollectFD(records)
	if _, ok := result.Paths.Index("tags[]"); !ok {
		t.Errorf("expected array path to use the [] marker, got paths: %v", result.Paths.Values())
	}
}

func TestCollectINDDynamicArrayMarker(t *testing.T) {
	records := mustIngest(t, `{"tags":[1,2]}`)
	result := CollectINDDynamic(records)
	if _, ok := result.Paths.Index("tags[*]"); !ok {
		t.Errorf("expected array path to use the [*] marker, got paths: %v", result.Paths.Values())
	}
}

func TestCollectINDStaticFlattensFirst(t *testing.T) {
	records := mustIngest(t, `{"a":[1,2],"b":[3,4]}`)
	result := CollectINDStatic(records)

	aIdx, ok := result.Paths.Index("a[*]")
	if !ok {
		t.Fatal("expected path a[*] to be present")
	}
	if result.ValueSets[aIdx].Cardinality() != 2 {
		t.Errorf("expected 2 distinct values for a[*], got %d", result.ValueSets[aIdx].Cardinality())
	}
}

func TestCollectIgnoresNullAndEmptyString(t *testing.T) {
	records := mustIngest(t, `{"a":null,"b":""}`)
	fd := CollectFD(records)
	if fd.Paths.Len() != 0 {
		t.Errorf("expected no non-constant paths (all values ignored), got %v", fd.Paths.Values())
	}
}
