package tmux

import (
	"context"
	"fmt"
	"strings"

	"github.com/grovetools/pmux/pkg/plan"
)

// CommandError reports the descriptor whose tmux invocation failed, with
// whatever output tmux produced. The remaining plan is never run after one
// of these: retrying a stateful windowing command blindly could duplicate
// windows or panes.
type CommandError struct {
	Desc   plan.Descriptor
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed: %s: %v", e.Desc.Op, e.Desc.CommandLine(), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += fmt.Sprintf(" (output: %s)", out)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Apply replays a plan against the tmux server, strictly in order. Each
// invocation must complete before the next starts because later descriptors
// address windows and panes that only exist once earlier ones have taken
// effect. The first failure aborts the rest; any already-created windows are
// left in place for the user to inspect or kill.
func Apply(ctx context.Context, c *Client, descs []plan.Descriptor) error {
	return apply(ctx, c, descs)
}

func apply(ctx context.Context, r runner, descs []plan.Descriptor) error {
	for _, d := range descs {
		if d.Interactive {
			if err := r.runInteractive(ctx, d.Args...); err != nil {
				return &CommandError{Desc: d, Err: err}
			}
			continue
		}

		out, err := r.run(ctx, d.Args...)
		if err != nil {
			return &CommandError{Desc: d, Output: out, Err: err}
		}
	}
	return nil
}
