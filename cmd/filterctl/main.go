// Package main is the entry point for filterctl, a command line front end
// for the filter catalog and recipe compiler.
package main

import (
	"os"

	"thirdcoast.systems/filtergraph/cmd/filterctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
