package main

import (
	"os"

	"github.com/jask/riparto/cmd/riparto/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
