// ABOUTME: CLI entry point for pdfview with terminal crash recovery
// ABOUTME: Builds the cobra command tree and maps errors to exit status 1

package main

import (
	"fmt"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/pdfview-go/internal/termfix"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
