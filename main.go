package main

import (
	"os"

	"github.com/ytget/sample-chooser/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
