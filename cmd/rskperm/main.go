// Command rskperm samples random permutations from Young diagram shapes.
//
// Usage:
//
//	rskperm sample --shape "4,3,1" [--seed N] [--mode shortcut|bumping] [--parallel]
//	rskperm tableau --shape "5^3"
//	rskperm staircase 6
//
// Global flags: --format text|json|yaml, --config FILE, --verbose.
// Every flag can also come from a RSKPERM_<FLAG> environment variable or the
// YAML config file; flags win over env, env over file.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and maps errors to exit codes.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return GetExitCode(err)
	}
	return ExitSuccess
}
