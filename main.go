package main

import (
	"os"

	"github.com/thirumal-kumar/interview-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
