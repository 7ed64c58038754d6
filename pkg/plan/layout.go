package plan

import "github.com/grovetools/pmux/pkg/project"

// WorkaroundLayout is the space-tolerant preset applied while panes are
// still being created. Splitting straight into the user's layout can fail
// with "create pane failed: pane too small" because tmux redistributes cells
// on every split; tiled always leaves room for one more pane.
const WorkaroundLayout = project.LayoutTiled

// splitLayoutArgs returns the select-layout arguments chained onto every
// split-pane invocation. The user's declared layout is deliberately not used
// here; it is applied once, by finalLayout, after all panes exist.
func splitLayoutArgs(target string) []string {
	return []string{"select-layout", "-t", target, WorkaroundLayout}
}

// finalLayout resolves the layout applied to a finished window: the window's
// declared layout, then the project's, then the workaround preset. Falling
// back to the workaround keeps the window in the state the intermediate
// splits produced rather than leaving it half-arranged.
func finalLayout(p *project.Project, w *project.Window) string {
	if l := p.WindowLayout(w); l != "" {
		return l
	}
	return WorkaroundLayout
}

func layoutArgs(target, layout string) []string {
	return []string{"select-layout", "-t", target, layout}
}
