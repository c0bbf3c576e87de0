// Package main is the entry point for the vidio CLI/TUI.
package main

import (
	"os"

	"github.com/0xti4n/vidio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
