package main

import (
	"os"

	"github.com/wonny/jyotish/cmd/jyotish/commands"
)

// main is the entry point for the jyotish CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
