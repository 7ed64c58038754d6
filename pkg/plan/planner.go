package plan

import (
	"fmt"
	"strings"

	"github.com/grovetools/pmux/pkg/project"
)

// Build converts a validated project into the ordered descriptor list that
// reproduces it. It reads the project, the server's base indices and the
// resolved capabilities; it never queries tmux itself.
//
// tmux creates the first window as part of new-session and the first pane as
// part of every window, so the plan never double-creates either: window 0
// gets rename-window instead of new-window, and pane 0 of each window gets
// no split-pane.
func Build(p *project.Project, base BaseIndices, caps Capabilities) []Descriptor {
	var descs []Descriptor

	descs = append(descs, Descriptor{
		Op:   OpCreateSession,
		Args: sessionArgs(p.Name, p.SessionStartDirectory()),
	})

	for i := range p.Windows {
		w := &p.Windows[i]
		windowIndex := base.Window + i
		windowTarget := fmt.Sprintf("%s:%d", p.Name, windowIndex)

		if i == 0 {
			if w.Name != "" {
				descs = append(descs, Descriptor{
					Op:   OpRenameWindow,
					Args: []string{"rename-window", "-t", windowTarget, w.Name},
				})
			}
		} else {
			descs = append(descs, Descriptor{
				Op:   OpNewWindow,
				Args: newWindowArgs(windowTarget, w.Name, p.WindowStartDirectory(w)),
			})
		}

		panes := w.Panes
		if len(panes) == 0 {
			// A window with no declared panes still has the one tmux
			// created with it.
			panes = []project.Pane{{}}
		}

		for j := range panes {
			pane := &panes[j]
			paneIndex := base.Pane + j
			paneTarget := fmt.Sprintf("%s:%d.%d", p.Name, windowIndex, paneIndex)

			if j > 0 {
				descs = append(descs, Descriptor{
					Op:   OpSplitPane,
					Args: splitArgs(windowTarget),
				})
			}

			// Pane 0 exists before its start directory is known, so the
			// directory is applied by cd rather than split-window -c. The
			// same path is used for every pane to keep behavior uniform.
			if dir := p.PaneStartDirectory(w, pane); dir != "" {
				descs = append(descs, Descriptor{
					Op:   OpSetCwd,
					Args: sendKeysArgs(paneTarget, "cd "+dir),
				})
			}

			for _, command := range pane.Commands {
				descs = append(descs, Descriptor{
					Op:   OpSendKeys,
					Args: sendKeysArgs(paneTarget, command),
				})
			}

			if args := paneTitleArgs(paneTarget, p.PaneNameUserOption, pane.Name, caps); args != nil {
				descs = append(descs, Descriptor{
					Op:   OpSetPaneTitle,
					Args: args,
				})
			}
		}

		descs = append(descs, Descriptor{
			Op:   OpSetLayout,
			Args: layoutArgs(windowTarget, finalLayout(p, w)),
		})
	}

	descs = append(descs, bindHooks(p.Hooks)...)

	if p.Attached {
		descs = append(descs, Descriptor{
			Op:          OpAttachSession,
			Args:        []string{"-u", "attach-session", "-t", p.Name},
			Interactive: true,
		})
	}

	return applyTmuxOptions(descs, p.TmuxOptions)
}

// sessionArgs builds the new-session invocation. -d keeps the new session
// detached; attaching is a separate, final descriptor.
func sessionArgs(name, startDirectory string) []string {
	args := []string{"new-session", "-d", "-s", name}
	if startDirectory != "" {
		args = append(args, "-c", startDirectory)
	}
	return args
}

func newWindowArgs(target, name, startDirectory string) []string {
	args := []string{"new-window", "-t", target}
	if name != "" {
		args = append(args, "-n", name)
	}
	if startDirectory != "" {
		args = append(args, "-c", startDirectory)
	}
	return args
}

// splitArgs builds the split-pane invocation. The select-layout chained into
// the same tmux call immediately re-tiles the window so the next split
// always has space; see WorkaroundLayout.
func splitArgs(windowTarget string) []string {
	args := []string{"split-window", "-t", windowTarget, ";"}
	return append(args, splitLayoutArgs(windowTarget)...)
}

func sendKeysArgs(paneTarget, command string) []string {
	return []string{"send-keys", "-t", paneTarget, command, "Enter"}
}

// paneTitleArgs builds the set-option invocation surfacing a pane's title
// through the project's user option. Titling is skipped (nil) when the pane
// has no name, when the project declares no user option, or when the server
// is too old for pane user options. A named pane without the option
// configured is not an error, just a no-op.
func paneTitleArgs(paneTarget, userOption, paneName string, caps Capabilities) []string {
	if userOption == "" || paneName == "" || !caps.PaneTitles {
		return nil
	}
	return []string{"set-option", "-p", "-t", paneTarget, "@" + userOption, paneName}
}

// applyTmuxOptions prefixes the project's passthrough tmux flags (e.g.
// "-f /path/to/conf") onto every descriptor, so each invocation targets the
// same server the user asked for.
func applyTmuxOptions(descs []Descriptor, options string) []Descriptor {
	opts := strings.Fields(options)
	if len(opts) == 0 {
		return descs
	}
	for i := range descs {
		descs[i].Args = append(append([]string{}, opts...), descs[i].Args...)
	}
	return descs
}
