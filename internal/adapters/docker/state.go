package docker

import (
	"strings"

	"github.com/dockpanel/dockpanel/internal/core/domain"
)

// DeriveState infers a coarse lifecycle state from the human-readable
// status column. It is a fallback for listings that omit an explicit
// state field; when the runtime reports a state, that wins.
func DeriveState(status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.HasPrefix(s, "up"):
		return domain.StateRunning
	case strings.HasPrefix(s, "exited"):
		return domain.StateExited
	case strings.Contains(s, "paused"):
		return domain.StatePaused
	default:
		return domain.StateUnknown
	}
}
