// Command zapbench runs registered micro-benchmarks, compares them
// against a saved baseline, and reports the result as a text table or
// JSON-per-line (spec.md §6).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// spec.md §6: non-zero on CLI parse error (or on a ConfigError
		// surfaced from resolveConfig before any benchmark runs).
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(exitCode)
}
