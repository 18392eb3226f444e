// Package main is the entry point for the MultiProgressView demo.
package main

import (
	"os"

	"github.com/zxf000000/MultiProgressView/cmd/multiprogress-demo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
