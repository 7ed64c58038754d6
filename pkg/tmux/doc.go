// Package tmux is the only side-effecting half of pmux: it shells out to the
// tmux CLI to resolve server state (base indices, version capabilities) and
// to replay a command plan produced by pkg/plan.
//
// The package provides functionality to:
//   - Query the server's window/pane numbering origins
//   - Probe the server version for feature gating
//   - Execute a descriptor plan sequentially, stopping at the first failure
//   - Check session existence and wait for sessions to close
//
// Example usage:
//
//	client, err := tmux.NewClient()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	base, err := client.BaseIndices(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	caps, err := client.Capabilities(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	descs := plan.Build(proj, base, caps)
//	if err := tmux.Apply(ctx, client, descs); err != nil {
//	    log.Fatal(err)
//	}
package tmux
