package main

import (
	"os"

	"github.com/summa-explorer/summa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
