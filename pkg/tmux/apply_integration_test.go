package tmux

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/grovetools/pmux/pkg/plan"
	"github.com/grovetools/pmux/pkg/project"
)

// TestApplyBuildsDeclaredTopology replays a full plan against a real tmux
// server and checks the resulting window/pane counts.
func TestApplyBuildsDeclaredTopology(t *testing.T) {
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("tmux not available in PATH, skipping integration tests")
	}

	ctx := context.Background()
	sessionName := "test-apply-" + time.Now().Format("20060102150405")

	client, err := NewClient()
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	t.Cleanup(func() {
		exec.Command("tmux", "kill-session", "-t", sessionName).Run()
	})

	proj := &project.Project{
		Name:   sessionName,
		Layout: project.LayoutTiled,
		Windows: []project.Window{
			{
				Name: "main",
				Panes: []project.Pane{
					{Commands: []string{"echo 'first pane'"}},
					{Commands: []string{"echo 'second pane'"}},
					{},
				},
			},
			{Name: "extra"},
		},
	}

	base, err := client.BaseIndices(ctx)
	if err != nil {
		t.Fatalf("BaseIndices failed: %v", err)
	}
	caps, err := client.Capabilities(ctx)
	if err != nil {
		t.Fatalf("Capabilities failed: %v", err)
	}

	descs := plan.Build(proj, base, caps)
	if err := Apply(ctx, client, descs); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	out, err := exec.Command("tmux", "list-windows", "-t", sessionName).Output()
	if err != nil {
		t.Fatalf("Failed to list windows: %v", err)
	}
	windows := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(windows) != 2 {
		t.Errorf("Expected 2 windows, got %d: %q", len(windows), string(out))
	}

	out, err = exec.Command("tmux", "list-panes", "-s", "-t", sessionName).Output()
	if err != nil {
		t.Fatalf("Failed to list panes: %v", err)
	}
	panes := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(panes) != 4 {
		t.Errorf("Expected 4 panes across the session, got %d: %q", len(panes), string(out))
	}
}
