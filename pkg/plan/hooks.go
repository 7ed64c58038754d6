package plan

import "github.com/grovetools/pmux/pkg/project"

// hookArgs builds the set-hook invocation for one declared hook. -a appends
// rather than replaces, so project hooks coexist with hooks from tmux.conf.
// Hook names are forwarded as-is; tmux rejects unknown names itself.
func hookArgs(h project.Hook) []string {
	return []string{"set-hook", "-a", h.Name, h.Command}
}

// bindHooks emits one set-hook descriptor per declared hook, in declaration
// order. An empty hook list contributes nothing to the plan.
func bindHooks(hooks []project.Hook) []Descriptor {
	var descs []Descriptor
	for _, h := range hooks {
		descs = append(descs, Descriptor{Op: OpSetHook, Args: hookArgs(h)})
	}
	return descs
}
