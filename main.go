package main

import (
	"os"

	"github.com/RdoLimaJunior/cosmus/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
