package main

import (
	"fmt"
	"os"

	"github.com/rocketscienceinc/unbeatable-tictactoe/internal/cli"
)

// main - is the entry point of the application. It runs the command line and exits non-zero on failure.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := cli.Root().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
