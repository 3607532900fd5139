package main

import (
	"os"

	"github.com/HaiderNakara/doc-extract-web/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
