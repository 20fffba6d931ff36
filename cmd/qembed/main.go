// Command qembed embeds Ising problems onto hardware graphs, unembeds
// physical solutions and quadratizes higher-order objectives.
//
//	qembed embed job.yaml --clean --smear -o physical.yaml
//	qembed unembed job.yaml --strategy vote
//	qembed quadratize table.txt --penalty 40
//	qembed chimera 2 2 4
//	qembed inspect job.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "qembed:", err)
		os.Exit(1)
	}
}
