// Package project defines the declarative model for a pmux project: a named
// tmux session composed of windows and panes, loaded from a TOML or YAML
// config file. The model is read-only once loaded; the planner in pkg/plan
// consumes it without mutating it.
package project

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

import "fmt"

// Preset layout names recognized by tmux's select-layout. Anything else is
// passed through as a custom layout string in tmux's layout-checksum format.
const (
	LayoutEvenHorizontal = "even-horizontal"
	LayoutEvenVertical   = "even-vertical"
	LayoutMainHorizontal = "main-horizontal"
	LayoutMainVertical   = "main-vertical"
	LayoutTiled          = "tiled"
)

var presetLayouts = map[string]bool{
	LayoutEvenHorizontal: true,
	LayoutEvenVertical:   true,
	LayoutMainHorizontal: true,
	LayoutMainVertical:   true,
	LayoutTiled:          true,
}

// IsPresetLayout reports whether name is one of tmux's built-in layouts.
func IsPresetLayout(name string) bool {
	return presetLayouts[name]
}

// Project is the top-level config model for one tmux session.
type Project struct {
	// Name identifies the session. Required.
	Name string `toml:"name" yaml:"name" json:"name"`

	// StartDirectory is the default working directory for the session,
	// inherited by windows and panes that don't set their own.
	StartDirectory string `toml:"start_directory" yaml:"start_directory,omitempty" json:"start_directory,omitempty"`

	// Layout is applied to every window that doesn't declare its own.
	// Either a preset name or a custom tmux layout string.
	Layout string `toml:"layout" yaml:"layout,omitempty" json:"layout,omitempty"`

	// PaneNameUserOption names the tmux user option used to surface pane
	// titles (e.g. set -g pane-border-format "#{@custom_pane_title}").
	// Pane titles are only emitted when this is set.
	PaneNameUserOption string `toml:"pane_name_user_option" yaml:"pane_name_user_option,omitempty" json:"pane_name_user_option,omitempty"`

	// TmuxOptions is an opaque string of flags (e.g. "-f /path/to/conf")
	// prefixed to every tmux command pmux issues.
	TmuxOptions string `toml:"tmux_options" yaml:"tmux_options,omitempty" json:"tmux_options,omitempty"`

	// Attached controls whether the invoking terminal attaches to the
	// session after creation. Defaults to true.
	Attached bool `toml:"attached" yaml:"attached" json:"attached"`

	Hooks   []Hook   `toml:"hooks" yaml:"hooks,omitempty" json:"hooks,omitempty"`
	Windows []Window `toml:"windows" yaml:"windows" json:"windows"`
}

// Window is a tab-like container of panes within the session.
type Window struct {
	Name           string `toml:"name" yaml:"name,omitempty" json:"name,omitempty"`
	Layout         string `toml:"layout" yaml:"layout,omitempty" json:"layout,omitempty"`
	StartDirectory string `toml:"start_directory" yaml:"start_directory,omitempty" json:"start_directory,omitempty"`

	// Panes within the window, in declaration order. An empty list means
	// one implicit default pane.
	Panes []Pane `toml:"panes" yaml:"panes,omitempty" json:"panes,omitempty"`
}

// Pane is a single terminal viewport running a shell.
type Pane struct {
	Name           string   `toml:"name" yaml:"name,omitempty" json:"name,omitempty"`
	StartDirectory string   `toml:"start_directory" yaml:"start_directory,omitempty" json:"start_directory,omitempty"`
	Commands       []string `toml:"commands" yaml:"commands,omitempty" json:"commands,omitempty"`
}

// Hook binds a tmux event name to an action. Names are forwarded to tmux
// unvalidated; an unrecognized name fails on the tmux side, not here.
type Hook struct {
	Name    string `toml:"name" yaml:"name" json:"name"`
	Command string `toml:"command" yaml:"command" json:"command"`
}

// ValidationError describes a config field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid project config: %s: %s", e.Field, e.Reason)
}

// Validate checks the required fields. It runs before any tmux command is
// issued, so a validation failure never leaves partial session state behind.
func (p *Project) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(p.Windows) == 0 {
		return &ValidationError{Field: "windows", Reason: "at least one window is required"}
	}
	for i, h := range p.Hooks {
		if h.Name == "" {
			return &ValidationError{Field: fmt.Sprintf("hooks[%d].name", i), Reason: "must not be empty"}
		}
		if h.Command == "" {
			return &ValidationError{Field: fmt.Sprintf("hooks[%d].command", i), Reason: "must not be empty"}
		}
	}
	return nil
}

// SessionStartDirectory resolves the working directory passed to
// new-session. The first window's directory wins over the project's because
// the first window is created as part of session creation.
func (p *Project) SessionStartDirectory() string {
	if len(p.Windows) > 0 && p.Windows[0].StartDirectory != "" {
		return p.Windows[0].StartDirectory
	}
	return p.StartDirectory
}

// WindowStartDirectory resolves a window's effective working directory:
// window over project, empty when neither is set (tmux then uses its own
// default).
func (p *Project) WindowStartDirectory(w *Window) string {
	if w.StartDirectory != "" {
		return w.StartDirectory
	}
	return p.StartDirectory
}

// PaneStartDirectory resolves a pane's effective working directory with
// pane > window > project precedence.
func (p *Project) PaneStartDirectory(w *Window, pane *Pane) string {
	if pane.StartDirectory != "" {
		return pane.StartDirectory
	}
	return p.WindowStartDirectory(w)
}

// WindowLayout resolves a window's declared layout, falling back to the
// project layout. Empty when neither is set.
func (p *Project) WindowLayout(w *Window) string {
	if w.Layout != "" {
		return w.Layout
	}
	return p.Layout
}
