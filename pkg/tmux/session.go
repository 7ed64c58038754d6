package tmux

import (
	"context"
	"strings"
)

// SessionExists reports whether a session with the given name is running.
// has-session exits 1 for a missing session, which is not an error here.
func (c *Client) SessionExists(ctx context.Context, sessionName string) (bool, error) {
	_, err := c.run(ctx, "has-session", "-t", sessionName)
	if err == nil {
		return true, nil
	}

	if strings.Contains(err.Error(), "exit status 1") {
		return false, nil
	}

	return false, err
}

// Attach attaches the invoking terminal to an existing session. Used when
// start finds the project's session already running.
func (c *Client) Attach(ctx context.Context, sessionName string) error {
	return c.runInteractive(ctx, "-u", "attach-session", "-t", sessionName)
}

// KillSession terminates a session and everything in it.
func (c *Client) KillSession(ctx context.Context, sessionName string) error {
	_, err := c.run(ctx, "kill-session", "-t", sessionName)
	return err
}
