package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/projcheck/internal/cmd"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and maps its result to a process exit code
func run(args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when SetArgs receives nil
	if args == nil {
		args = []string{}
	}

	rootCmd := cmd.NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
