package main

import (
	"context"
	"fmt"

	grovelogging "github.com/grovetools/core/logging"
	"github.com/grovetools/core/tui/theme"
	"github.com/grovetools/pmux/pkg/plan"
	"github.com/grovetools/pmux/pkg/project"
	"github.com/grovetools/pmux/pkg/tmux"
	"github.com/spf13/cobra"
)

var ulogStart = grovelogging.NewUnifiedLogger("pmux.start")

var startCmd = &cobra.Command{
	Use:   "start <config-path>",
	Short: "Start a tmux session from a project config file",
	Long: `Start a tmux session using a project config file.

The session is created detached, windows and panes are built up in
declaration order, and unless the project sets attached = false the invoking
terminal attaches to the finished session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startProject(context.Background(), args[0])
	},
}

// startProject loads, plans and executes one project config. Shared between
// the start command and the projects picker.
func startProject(ctx context.Context, configPath string) error {
	proj, err := project.Load(configPath)
	if err != nil {
		return err
	}

	client, err := tmux.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create tmux client: %w", err)
	}

	exists, err := client.SessionExists(ctx, proj.Name)
	if err != nil {
		return fmt.Errorf("failed to check session existence: %w", err)
	}
	if exists {
		ulogStart.Info("Session already exists").
			Field("session", proj.Name).
			Field("config", configPath).
			Pretty(fmt.Sprintf("%s Session '%s' already exists.", theme.IconInfo, proj.Name)).
			PrettyOnly().
			Emit()
		if proj.Attached {
			return client.Attach(ctx, proj.Name)
		}
		return nil
	}

	descs, err := planProject(ctx, client, proj)
	if err != nil {
		return err
	}

	ulogStart.Debug("Executing session plan").
		Field("session", proj.Name).
		Field("commands", len(descs)).
		Emit()

	if err := tmux.Apply(ctx, client, descs); err != nil {
		return fmt.Errorf("failed to build session '%s': %w", proj.Name, err)
	}

	if !proj.Attached {
		ulogStart.Success("Session started").
			Field("session", proj.Name).
			Field("windows", len(proj.Windows)).
			Pretty(fmt.Sprintf("%s Session '%s' started.\n\nTo attach to this session, run:\n  tmux attach-session -t %s",
				theme.IconSuccess, proj.Name, proj.Name)).
			PrettyOnly().
			Emit()
	}

	return nil
}

// planProject resolves server state and produces the descriptor list for a
// project. Both start and debug go through this, so debug output previews
// exactly what start would run.
func planProject(ctx context.Context, client *tmux.Client, proj *project.Project) ([]plan.Descriptor, error) {
	base, err := client.BaseIndices(ctx)
	if err != nil {
		return nil, err
	}

	caps, err := client.Capabilities(ctx)
	if err != nil {
		return nil, err
	}

	return plan.Build(proj, base, caps), nil
}
