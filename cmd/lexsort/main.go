// Command lexsort prints integers ordered by their English names.
//
// Usage:
//
//	lexsort sort [--start N] [--count N] [--output text|json] [--numeric]
//	lexsort name [--] <integer>...
//	lexsort parse <words>...
//
// Defaults come from an embedded config and may be overridden with
// --config and then by flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lexsort: %v\n", err)
		os.Exit(1)
	}
}
