package ports

import (
	"context"
	"errors"

	"github.com/dockpanel/dockpanel/internal/core/domain"
)

// ErrInventoryUnavailable means the container runtime could not be queried
// or its output could not be understood. The read is side-effect free, so
// callers may simply retry.
var ErrInventoryUnavailable = errors.New("container inventory unavailable")

// InventorySource produces the full container inventory of the host,
// including stopped containers. Implementations must be all-or-nothing: a
// partially mapped listing is worse than a failed one, because it misleads
// the operator about what is running.
//
// The CLI and SDK adapters both implement this, so the HTTP layer never
// cares how the inventory is obtained.
type InventorySource interface {
	ListContainers(ctx context.Context) ([]domain.Container, error)
}
