package main

import (
	"os"

	"github.com/probatch/probatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
