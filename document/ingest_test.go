package document

import (
	"strings"
	"testing"
)

func TestIngestAssignsSequentialDocIDs(t *testing.T) {
	input := strings.Join([]string{
		`{"a":1,"b":"x"}`,
		`{"a":2,"b":"y"}`,
		`{"a":3,"b":"z"}`,
	}, "\n")

	records, err := Ingest(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.DocID != uint32(i) {
			t.Errorf("record %d: expected DocID %d, got %d", i, i, rec.DocID)
		}
		if rec.Value.Kind != KindObject {
			t.Errorf("record %d: expected object kind, got %v", i, rec.Value.Kind)
		}
	}
}

func TestIngestSkipsBlankLines(t *testing.T) {
	input := "{\"a\":1}\n\n{\"a\":2}\n"
	records, err := Ingest(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestIngestRejectsInvalidJSON(t *testing.T) {
	input := "{\"a\":1}\nnot json\n"
	_, err := Ingest(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected an error for invalid json, got nil")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected error to mention line 2, got: %v", err)
	}
}

func TestFromAnyCanonicalizesScalars(t *testing.T) {
	v, err := FromAny(map[string]any{
		"n":    float64(42),
		"flag": true,
		"s":    "hello",
		"z":    nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Object["n"].Scalar != "42" {
		t.Errorf("expected scalar \"42\", got %q", v.Object["n"].Scalar)
	}
	if v.Object["flag"].Scalar != "true" {
		t.Errorf("expected scalar \"true\", got %q", v.Object["flag"].Scalar)
	}
	if v.Object["z"].Kind != KindNull {
		t.Errorf("expected null kind for z, got %v", v.Object["z"].Kind)
	}
}
