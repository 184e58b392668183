// Package main is the entry point for the deck command line tool
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// cobra skips PersistentPostRunE when a command fails
		_ = teardown(nil, nil)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printMeta(errors.GetMeta(err))
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// printMeta lists the slot, card or sheet an error is about
func printMeta(meta map[string]any) {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		if k == "validation_errors" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "  %s: %v\n", k, meta[k])
	}
}
