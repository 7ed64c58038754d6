package main

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/pmux/pkg/tmux"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tmux installation pmux would run against",
	Long: `Check that tmux is installed and report the server facts pmux resolves
before planning a session: version, feature support and base indices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		path, err := exec.LookPath("tmux")
		if err != nil {
			fmt.Printf("%s tmux not found in PATH\n", theme.IconError)
			return fmt.Errorf("tmux command not found in PATH: %w", err)
		}
		fmt.Printf("%s tmux found: %s\n", theme.IconSuccess, path)

		client, err := tmux.NewClient()
		if err != nil {
			return err
		}

		ver, err := client.ServerVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s version: %s\n", theme.IconSuccess, ver)

		caps, err := client.Capabilities(ctx)
		if err != nil {
			return err
		}
		if caps.PaneTitles {
			fmt.Printf("%s pane titles supported\n", theme.IconSuccess)
		} else {
			fmt.Printf("%s pane titles unsupported (needs tmux >= 3.0); pane_name_user_option will be ignored\n", theme.IconWarning)
		}

		base, err := client.BaseIndices(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s base-index: %d, pane-base-index: %d\n", theme.IconInfo, base.Window, base.Pane)

		return nil
	},
}
