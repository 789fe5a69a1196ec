package main

import (
	"os"

	"github.com/khata-dev/khata/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
