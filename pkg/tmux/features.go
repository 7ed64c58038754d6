package tmux

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grovetools/pmux/pkg/plan"
)

// Pane user options (and with them pane titling) arrived in tmux 3.0.
const paneTitleMinMajor = 3

var versionRe = regexp.MustCompile(`tmux (?:next-)?(\d+)\.(\d+)`)

// Version is a parsed tmux server version. Letter suffixes ("3.3a") are
// ignored; they never gate features.
type Version struct {
	Major int
	Minor int
	// Raw is the unparsed output of tmux -V, for display.
	Raw string
}

func (v Version) String() string {
	return v.Raw
}

// ServerVersion probes the installed tmux binary's version.
func (c *Client) ServerVersion(ctx context.Context) (Version, error) {
	out, err := c.run(ctx, "-V")
	if err != nil {
		return Version{}, fmt.Errorf("failed to query tmux version: %w", err)
	}
	return parseVersion(out), nil
}

// parseVersion extracts major/minor from "tmux 3.3a" style output.
// Development builds ("tmux next-3.6", "tmux master") don't match the
// numeric pattern cleanly; master is treated as newer than anything.
func parseVersion(out string) Version {
	raw := strings.TrimSpace(out)
	v := Version{Raw: raw}

	if strings.Contains(raw, "master") {
		v.Major = paneTitleMinMajor
		return v
	}

	m := versionRe.FindStringSubmatch(raw)
	if m == nil {
		return v
	}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	return v
}

// Capabilities resolves the feature flags the planner needs, once per run.
// Feature-gated descriptors are decided here rather than attempted blindly
// against servers that would mishandle them.
func (c *Client) Capabilities(ctx context.Context) (plan.Capabilities, error) {
	v, err := c.ServerVersion(ctx)
	if err != nil {
		return plan.Capabilities{}, err
	}
	return capabilitiesFor(v), nil
}

func capabilitiesFor(v Version) plan.Capabilities {
	return plan.Capabilities{
		PaneTitles: v.Major >= paneTitleMinMajor,
	}
}
