package plan_test

import (
	"fmt"

	"github.com/grovetools/pmux/pkg/plan"
	"github.com/grovetools/pmux/pkg/project"
)

func ExampleBuild() {
	proj := &project.Project{
		Name:           "dev",
		StartDirectory: "/home/me/app",
		Layout:         project.LayoutMainVertical,
		Windows: []project.Window{
			{
				Name: "editor",
				Panes: []project.Pane{
					{Commands: []string{"vim ."}},
					{Commands: []string{"go test ./..."}},
				},
			},
		},
	}

	descs := plan.Build(proj, plan.BaseIndices{}, plan.Capabilities{PaneTitles: true})
	for _, d := range descs {
		fmt.Println(d.CommandLine())
	}

	// Output:
	// tmux new-session -d -s dev -c /home/me/app
	// tmux rename-window -t dev:0 editor
	// tmux send-keys -t dev:0.0 cd /home/me/app Enter
	// tmux send-keys -t dev:0.0 vim . Enter
	// tmux split-window -t dev:0 ; select-layout -t dev:0 tiled
	// tmux send-keys -t dev:0.1 cd /home/me/app Enter
	// tmux send-keys -t dev:0.1 go test ./... Enter
	// tmux select-layout -t dev:0 main-vertical
}
