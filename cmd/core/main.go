package main

import (
	"fmt"
	"os"

	"github.com/grovetools/core/cli"
	"github.com/grovetools/core/cmd"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"core",
		"Core libraries and debugging tools for the Grove ecosystem",
	)

	versionCmd := cli.NewVersionCommand("core", cli.VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cmd.NewWsCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewTmuxCmd())
	rootCmd.AddCommand(cmd.NewTuiCmd())
	rootCmd.AddCommand(cmd.NewPathsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
