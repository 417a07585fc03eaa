// Command docprofile mines functional and inclusion dependencies out of a
// newline-delimited JSON document collection, and can also print the flat
// path/value records the other subcommands build on top of.
//
// Usage:
//
//	docprofile fd --path docs.ndjson
//	docprofile ind --path docs.ndjson [--approximate] [--threshold 0.9] [--static|--dynamic]
//	docprofile flatten --path docs.ndjson
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "fd":
		runFD(os.Args[2:])
	case "ind":
		runIND(os.Args[2:])
	case "flatten":
		runFlatten(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "docprofile: unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: docprofile <fd|ind|flatten> [flags]")
	fmt.Fprintln(os.Stderr, "  fd [--path FILE]")
	fmt.Fprintln(os.Stderr, "  ind [--path FILE] [--approximate] [--threshold F] [--static|--dynamic]")
	fmt.Fprintln(os.Stderr, "  flatten [--path FILE]")
	fmt.Fprintln(os.Stderr, "Input is read from standard input when --path is omitted.")
}

func openInput(path string) *os.File {
	if path == "" {
		return os.Stdin
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("opening %s: %v", path, err)
	}
	return f
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs
}
