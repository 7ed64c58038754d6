package main

import (
	"fmt"
	"os"

	"github.com/grovetools/core/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pmux",
	Short: "Project-based tmux session launcher",
	Long: `pmux reproduces a declared tmux workspace from a project config file.

A project config (TOML or YAML) describes a session's windows, panes, layouts
and hooks. pmux translates it into an ordered sequence of tmux commands and
replays them, so the same config always produces the same session topology.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	vInfo := version.GetInfo()
	rootCmd.Version = vInfo.Version
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(waitCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
