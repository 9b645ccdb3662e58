package main

import (
	"os"

	"github.com/synapse-ai/sourcing-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
