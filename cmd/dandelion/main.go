// File: main.go
// Title: dandelion CLI Entry Point
// Description: Runs the dandelion command tree and exits non-zero on failure.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/hellerve/dandelion/cmd/dandelion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
