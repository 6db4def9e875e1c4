// Command execcensor is an operator-facing harness for the execpolicy
// decision engine: inspect policy files, dry-run the per-call decision
// pipeline, and replay the spec's literal test scenarios against a
// recording stub instead of a live supervisor.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
