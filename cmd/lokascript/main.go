// File: main.go
// Title: CLI Entry Point
// Description: Command line interface for parsing multilingual command
//              text, tokenizing, scanning templates and serving the
//              HTTP API.
// Version: v0.1.0
// Created: 2025-11-18

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
