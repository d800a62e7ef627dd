package main

import (
	"os"

	"github.com/cbcr-dev/cbcrgen/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
