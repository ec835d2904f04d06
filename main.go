package main

import (
	"os"

	"github.com/pr-of-it/running-dbal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
