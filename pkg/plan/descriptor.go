// Package plan turns a validated project config into the ordered sequence of
// tmux commands that reproduces it. Planning is pure: it performs no I/O and
// never touches tmux, so a plan can be inspected (pmux debug) or replayed
// (pmux start) from the identical descriptor list. Ordering matters: every
// descriptor addresses windows and panes by indices that only exist because
// earlier descriptors created them.
package plan

import "strings"

// Op identifies the kind of tmux operation a descriptor performs.
type Op string

const (
	OpCreateSession Op = "create-session"
	OpRenameWindow  Op = "rename-window"
	OpSetCwd        Op = "set-cwd"
	OpNewWindow     Op = "new-window"
	OpSplitPane     Op = "split-pane"
	OpSetLayout     Op = "set-layout"
	OpSetPaneTitle  Op = "set-pane-title"
	OpSendKeys      Op = "send-keys"
	OpSetHook       Op = "set-hook"
	OpAttachSession Op = "attach-session"
)

// Descriptor is one fully-resolved tmux invocation: the complete argument
// vector (without the leading "tmux") plus how to run it.
type Descriptor struct {
	Op   Op
	Args []string

	// Interactive descriptors inherit the invoking terminal's stdio
	// (attach-session). Everything else runs non-interactively.
	Interactive bool
}

// CommandLine renders the descriptor as the literal shell command it maps
// to. Debug mode prints exactly this, so debug output is a faithful preview
// of what execute mode runs.
func (d Descriptor) CommandLine() string {
	return "tmux " + strings.Join(d.Args, " ")
}

// BaseIndices holds the numbering origins configured in the running tmux
// server (base-index and pane-base-index). Commonly 0/0 but user config may
// set otherwise; generated target indices are always relative to these.
type BaseIndices struct {
	Window int
	Pane   int
}

// Capabilities carries the feature flags resolved from the tmux server once
// per run. The planner consults them instead of emitting commands that older
// servers silently mishandle.
type Capabilities struct {
	// PaneTitles is true when the server supports per-pane user options
	// (tmux >= 3.0), which pane titling depends on.
	PaneTitles bool
}
