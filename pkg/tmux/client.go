package tmux

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/grovetools/core/command"
)

// Client issues tmux CLI invocations through grove-core's SafeBuilder.
type Client struct {
	builder *command.SafeBuilder
}

// NewClient creates a tmux client, failing fast when tmux is not installed.
func NewClient() (*Client, error) {
	if _, err := exec.LookPath("tmux"); err != nil {
		return nil, fmt.Errorf("tmux command not found in PATH: %w", err)
	}

	builder := command.NewSafeBuilder()
	return &Client{
		builder: builder,
	}, nil
}

// runner is the seam between the executor and the tmux binary. The real
// implementation is Client; tests substitute a recording fake so plans can
// be verified without a tmux server.
type runner interface {
	run(ctx context.Context, args ...string) (string, error)
	runInteractive(ctx context.Context, args ...string) error
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd, err := c.builder.Build(ctx, "tmux", args...)
	if err != nil {
		return "", fmt.Errorf("failed to build command: %w", err)
	}

	execCmd := cmd.Exec()
	output, err := execCmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("tmux command failed: %w, output: %s", err, string(output))
	}

	return string(output), nil
}

// runInteractive runs tmux with the invoking terminal's stdio attached.
// attach-session needs this; it blocks until the client detaches, which can
// be hours, so it bypasses the builder's command timeout.
func (c *Client) runInteractive(ctx context.Context, args ...string) error {
	execCmd := exec.CommandContext(ctx, "tmux", args...)
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	if err := execCmd.Run(); err != nil {
		return fmt.Errorf("tmux command failed: %w", err)
	}
	return nil
}
