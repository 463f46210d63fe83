package main

import (
	"fmt"
	"os"

	"github.com/fluxcd/manifestgen/pkg/usererr"
)

func main() {
	rootCmd := newRoot().Command()
	if err := rootCmd.Execute(); err != nil {
		if uerr, ok := err.(*usererr.Error); ok {
			fmt.Fprintln(os.Stderr, uerr.Help)
		}
		os.Exit(1)
	}
}
