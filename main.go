package main

import (
	"os"

	"github.com/softmetal/promptgauge/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
