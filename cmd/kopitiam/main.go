package main

import (
	"os"

	"github.com/kedai-labs/kopitiam/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
