package engine

import (
	"context"
	"fmt"
)

// Lifecycle verbs accepted by PerformAction.
const (
	ActionStart   = "start"
	ActionStop    = "stop"
	ActionRestart = "restart"
	ActionPause   = "pause"
	ActionUnpause = "unpause"
)

// PerformAction maps a lifecycle verb onto the corresponding daemon call and
// normalizes the outcome into an ActionResult. The dispatcher is a thin
// proxy: no local precondition checks, the daemon's own state validation
// decides (pausing an already-paused container fails with the daemon's
// message). An unrecognized verb is rejected client-side without contacting
// the daemon at all.
func (e *Engine) PerformAction(ctx context.Context, containerID, action string) ActionResult {
	var (
		err  error
		past string
	)

	switch action {
	case ActionStart:
		err, past = e.cli.StartContainer(ctx, containerID), "started"
	case ActionStop:
		err, past = e.cli.StopContainer(ctx, containerID), "stopped"
	case ActionRestart:
		err, past = e.cli.RestartContainer(ctx, containerID), "restarted"
	case ActionPause:
		err, past = e.cli.PauseContainer(ctx, containerID), "paused"
	case ActionUnpause:
		err, past = e.cli.UnpauseContainer(ctx, containerID), "unpaused"
	default:
		return ActionResult{Success: false, Message: fmt.Sprintf("Unknown action: %s", action)}
	}

	if err != nil {
		return ActionResult{Success: false, Message: fmt.Sprintf("Failed to perform action: %v", err)}
	}

	return ActionResult{Success: true, Message: fmt.Sprintf("Container %s %s successfully", containerID, past)}
}
