// Package main is the entry point for the onboard CLI.
package main

import (
	"os"

	"github.com/f3rmion/onboard/cmd/onboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
