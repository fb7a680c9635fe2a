package main

import (
	"os"

	"github.com/candidate-pool/poolctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
