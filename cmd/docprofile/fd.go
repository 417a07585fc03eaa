package main

import (
	"fmt"
	"log"
	"os"

	"docprofile/collect"
	"docprofile/document"
	"docprofile/fd"
)

func runFD(args []string) {
	fs := newFlagSet("fd")
	path := fs.String("path", "", "Path to the newline-delimited JSON input file (default: standard input)")
	fs.Parse(args)

	f := openInput(*path)
	defer f.Close()

	records, err := document.Ingest(f)
	if err != nil {
		log.Fatalf("ingesting %s: %v", *path, err)
	}

	result := collect.CollectFD(records)
	deps := fd.Discover(result, len(records))

	fmt.Fprintf(os.Stderr, "Documents: %d\n", len(records))
	fmt.Fprintf(os.Stderr, "Functional Dependencies: %d\n", len(deps))
	for _, dep := range deps {
		fmt.Println(dep.String())
	}
}
