// Package main provides the silben CLI, a filter that inserts soft hyphens
// into German text so it can wrap cleanly on narrow displays.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
