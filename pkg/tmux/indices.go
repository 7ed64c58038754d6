package tmux

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/grovetools/pmux/pkg/plan"
)

// baseIndexRe pulls base-index and pane-base-index values out of the
// combined show-option output. Either line may be missing when the option
// was never set globally.
var baseIndexRe = regexp.MustCompile(`(?:base-index (\d+))?(?:.*\n)?(?:pane-base-index (\d+))?`)

// BaseIndices queries the running server for its window and pane numbering
// origins. The query also starts the server if needed, so a fresh machine
// behaves the same as one with a long-lived server. A failed query is an
// error; assuming 0 would produce plans that target windows which don't
// exist on servers configured with a non-zero base.
func (c *Client) BaseIndices(ctx context.Context) (plan.BaseIndices, error) {
	out, err := c.run(ctx,
		"start-server", ";",
		"show-option", "-g", "base-index", ";",
		"show-window-option", "-g", "pane-base-index",
	)
	if err != nil {
		return plan.BaseIndices{}, fmt.Errorf("failed to resolve tmux base indices: %w", err)
	}

	return parseBaseIndices(out), nil
}

// parseBaseIndices extracts the two indices from show-option output.
// Values absent from otherwise-valid output default to 0, matching what
// tmux uses when the option is unset.
func parseBaseIndices(out string) plan.BaseIndices {
	indices := plan.BaseIndices{}

	m := baseIndexRe.FindStringSubmatch(out)
	if m == nil {
		return indices
	}
	if m[1] != "" {
		if n, err := strconv.Atoi(m[1]); err == nil {
			indices.Window = n
		}
	}
	if m[2] != "" {
		if n, err := strconv.Atoi(m[2]); err == nil {
			indices.Pane = n
		}
	}

	return indices
}
