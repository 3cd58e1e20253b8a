package main

import (
	"os"

	"github.com/mkoester/axisctl/cmd/axisctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
