package main

import (
	"context"
	"fmt"

	"github.com/grovetools/pmux/pkg/project"
	"github.com/grovetools/pmux/pkg/tmux"
	"github.com/spf13/cobra"
)

var debugCmd = &cobra.Command{
	Use:   "debug <config-path>",
	Short: "Print the tmux commands a project config would run",
	Long: `Print the tmux commands that would be used to start and configure a
session from a project config file, without running any of them.

The output is line-for-line identical to what 'pmux start' would execute, so
it can be inspected or piped into a script.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		proj, err := project.Load(args[0])
		if err != nil {
			return err
		}

		// Base indices and capabilities still come from the real server;
		// the preview has to reflect the server it would run against.
		client, err := tmux.NewClient()
		if err != nil {
			return fmt.Errorf("failed to create tmux client: %w", err)
		}

		descs, err := planProject(ctx, client, proj)
		if err != nil {
			return err
		}

		for _, d := range descs {
			fmt.Println(d.CommandLine())
		}
		return nil
	},
}
