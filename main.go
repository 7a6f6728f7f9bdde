package main

import (
	"os"

	"github.com/nrqlkit/nrqltutor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
