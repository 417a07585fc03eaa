package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"docprofile/collect"
	"docprofile/document"
	"docprofile/ind"
)

const defaultINDThreshold = 0.9

func runIND(args []string) {
	fs := newFlagSet("ind")
	path := fs.String("path", "", "Path to the newline-delimited JSON input file (default: standard input)")
	approximate := fs.Bool("approximate", false, "Use threshold-overlap containment instead of exact subset")
	threshold := fs.Float64("threshold", defaultINDThreshold, "Overlap threshold used when -approximate is set")
	static := fs.Bool("static", false, "Flatten each document before collecting value sets")
	dynamic := fs.Bool("dynamic", false, "Walk each document directly without flattening (default)")
	fs.BoolVar(approximate, "a", false, "Shorthand for -approximate")
	fs.Float64Var(threshold, "t", defaultINDThreshold, "Shorthand for -threshold")
	fs.BoolVar(static, "s", false, "Shorthand for -static")
	fs.Parse(args)

	if *static && *dynamic {
		log.Fatalf("-static and -dynamic are mutually exclusive")
	}

	f := openInput(*path)
	defer f.Close()

	records, err := document.Ingest(f)
	if err != nil {
		log.Fatalf("ingesting %s: %v", *path, err)
	}

	var result collect.INDResult
	if *static {
		result = collect.CollectINDStatic(records)
	} else {
		result = collect.CollectINDDynamic(records)
	}

	engine, err := ind.NewINDEngine(result, ind.Options{
		Approximate: *approximate,
		Threshold:   *threshold,
	})
	if err != nil {
		log.Fatalf("configuring ind engine: %v", err)
	}

	pairs := engine.Discover(context.Background())

	fmt.Fprintf(os.Stderr, "Documents: %d\n", len(records))
	fmt.Fprintf(os.Stderr, "Inclusion Dependencies: %d\n", len(pairs))
	for _, p := range pairs {
		fmt.Println(p.String())
	}
}
