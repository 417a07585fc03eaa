package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"docprofile/document"
	"docprofile/flatten"
)

func runFlatten(args []string) {
	fs := newFlagSet("flatten")
	path := fs.String("path", "", "Path to the newline-delimited JSON input file (default: standard input)")
	fs.Parse(args)

	f := openInput(*path)
	defer f.Close()

	records, err := document.Ingest(f)
	if err != nil {
		log.Fatalf("ingesting %s: %v", *path, err)
	}

	for _, rec := range records {
		for _, flat := range flatten.Flatten(rec.Value) {
			line, err := json.Marshal(toNestedObject(flat))
			if err != nil {
				log.Fatalf("encoding flat record for doc %d: %v", rec.DocID, err)
			}
			fmt.Println(string(line))
		}
	}
}

// toNestedObject rebuilds a single JSON object from a flat record, splitting
// each dotted path back into nested objects so flatten's output uses the
// same encoding as the input.
func toNestedObject(flat flatten.Record) map[string]any {
	root := make(map[string]any)
	for path, scalar := range flat {
		segments := strings.Split(path, ".")
		node := root
		for _, seg := range segments[:len(segments)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		node[segments[len(segments)-1]] = scalar
	}
	return root
}
