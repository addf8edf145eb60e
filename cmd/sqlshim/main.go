// Package main is the entry point for the sqlshim CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sqlshim/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
