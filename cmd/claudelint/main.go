package main

import (
	"os"

	"github.com/moasq/claudelint/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
