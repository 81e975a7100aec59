package main

import (
	"os"

	"github.com/syduan2016/space-math-adventure/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
