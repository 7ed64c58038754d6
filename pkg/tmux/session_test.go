package tmux

import (
	"context"
	"os/exec"
	"testing"
	"time"
)

func TestSessionOperations(t *testing.T) {
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("tmux not available in PATH, skipping integration tests")
	}

	ctx := context.Background()
	sessionName := "test-session-" + time.Now().Format("20060102150405")

	client, err := NewClient()
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	t.Run("create test session", func(t *testing.T) {
		cmd := exec.Command("tmux", "new-session", "-d", "-s", sessionName, "sleep", "10")
		if err := cmd.Run(); err != nil {
			t.Fatalf("Failed to create test session: %v", err)
		}
	})

	t.Run("SessionExists returns true for existing session", func(t *testing.T) {
		exists, err := client.SessionExists(ctx, sessionName)
		if err != nil {
			t.Errorf("SessionExists failed: %v", err)
		}
		if !exists {
			t.Error("Expected session to exist, but it doesn't")
		}
	})

	t.Run("BaseIndices resolves against the running server", func(t *testing.T) {
		indices, err := client.BaseIndices(ctx)
		if err != nil {
			t.Fatalf("BaseIndices failed: %v", err)
		}
		if indices.Window < 0 || indices.Pane < 0 {
			t.Errorf("expected non-negative indices, got %+v", indices)
		}
	})

	t.Run("ServerVersion parses", func(t *testing.T) {
		v, err := client.ServerVersion(ctx)
		if err != nil {
			t.Fatalf("ServerVersion failed: %v", err)
		}
		if v.Raw == "" {
			t.Error("expected raw version string, got empty")
		}
	})

	t.Run("KillSession terminates the session", func(t *testing.T) {
		err := client.KillSession(ctx, sessionName)
		if err != nil {
			t.Errorf("KillSession failed: %v", err)
		}
	})

	t.Run("SessionExists returns false after kill", func(t *testing.T) {
		exists, err := client.SessionExists(ctx, sessionName)
		if err != nil {
			t.Errorf("SessionExists failed: %v", err)
		}
		if exists {
			t.Error("Expected session to be gone, but it exists")
		}
	})
}

func TestWaitForSessionClose(t *testing.T) {
	if _, err := exec.LookPath("tmux"); err != nil {
		t.Skip("tmux not available in PATH, skipping integration tests")
	}

	sessionName := "test-wait-" + time.Now().Format("20060102150405")

	client, err := NewClient()
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	cmd := exec.Command("tmux", "new-session", "-d", "-s", sessionName, "sleep", "1")
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	t.Cleanup(func() {
		exec.Command("tmux", "kill-session", "-t", sessionName).Run()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.WaitForSessionClose(ctx, sessionName, 100*time.Millisecond); err != nil {
		t.Fatalf("WaitForSessionClose failed: %v", err)
	}
}
