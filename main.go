package main

import (
	"os"

	"github.com/ooxo-pl/machines-data/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
