package main

import (
	"os"

	"github.com/abhisek/mathbird/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
