// Package main is the entry point for the Swarms CLI.
// It initializes and runs the command-line interface.
package main

import "github.com/swarms-world/swarms-cli/cmd"

func main() {
	cmd.Execute()
}
