package main

import (
	"os"

	"github.com/cloudvault/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
