// ABOUTME: Command-line client for COSMOS searches
// ABOUTME: Runs aggregated searches, headlines and source listings without the HTTP server

package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
