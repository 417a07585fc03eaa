package flatten

import (
	"testing"

	"docprofile/document"
)

func mustValue(t *testing.T, v any) document.Value {
	t.Helper()
	dv, err := document.FromAny(v)
	if err != nil {
		t.Fatalf("unexpected error building value: %v", err)
	}
	return dv
}

func TestFlattenScalar(t *testing.T) {
	v := mustValue(t, map[string]any{"a": float64(1)})
	records := Flatten(v)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["a"] != "1" {
		t.Errorf("expected a=1, got %q", records[0]["a"])
	}
}

func TestFlattenEmptyObject(t *testing.T) {
	v := mustValue(t, map[string]any{})
	records := Flatten(v)
	if len(records) != 1 || records[0][""] != "" {
		t.Fatalf("expected single sentinel record, got %v", records)
	}
}

func TestFlattenEmptyArray(t *testing.T) {
	v := mustValue(t, map[string]any{"a": []any{}})
	records := Flatten(v)
	if len(records) != 1 || records[0]["a"] != "" {
		t.Fatalf("expected single sentinel record for empty array, got %v", records)
	}
}

// TestFlattenCartesianProduct checks that two sibling arrays of size 2
// produce exactly 2*2 = 4 records.
func TestFlattenCartesianProduct(t *testing.T) {
	v := mustValue(t, map[string]any{
		"a": []any{float64(1), float64(2)},
		"b": []any{float64(3), float64(4)},
	})
	records := Flatten(v)
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}

	seen := make(map[string]bool)
	for _, r := range records {
		key := r["a[*]"] + "|" + r["b[*]"]
		seen[key] = true
	}
	for _, want := range []string{"1|3", "1|4", "2|3", "2|4"} {
		if !seen[want] {
			t.Errorf("expected combination %q to be present, got %v", want, records)
		}
	}
}

func TestFlattenArrayUnion(t *testing.T) {
	v := mustValue(t, map[string]any{"a": []any{float64(1), float64(2), float64(3)}})
	records := Flatten(v)
	if len(records) != 3 {
		t.Fatalf("expected 3 records (union, not product), got %d", len(records))
	}
}

func TestFlattenLaterKeyWinsOnConflict(t *testing.T) {
	// Array elements at the same nested path are unioned into separate
	// records, so they never collide.
	v := mustValue(t, map[string]any{
		"items": []any{
			map[string]any{"x": float64(1)},
			map[string]any{"x": float64(2)},
		},
	})
	records := Flatten(v)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// Sibling keys "a" (nested b) and "a.b" both emit path "a.b"; keys merge
	// in sorted order, so the later key "a.b" wins.
	v = mustValue(t, map[string]any{
		"a":   map[string]any{"b": float64(1)},
		"a.b": float64(2),
	})
	records = Flatten(v)
	if len(records) != 1 || records[0]["a.b"] != "2" {
		t.Fatalf("expected a single record with a.b=2, got %v", records)
	}
}
