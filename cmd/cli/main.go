// Package main is the entry point for the port-tariff CLI.
package main

import (
	"os"

	"port-tariff/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
