package main

import (
	"os"

	"github.com/ridloal/plant-catalog/internal/cli"
	"github.com/ridloal/plant-catalog/internal/platform/config"
)

func main() {
	config.Load()
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
