package main

import (
	"os"

	"branchup.dev/branchup/internal/cli"
)

var version = "dev"

func main() {
	exitCode := 0
	rootCmd := cli.NewRootCmd(version, &exitCode)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
