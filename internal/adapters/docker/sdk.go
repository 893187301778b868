package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/client"

	"github.com/dockpanel/dockpanel/internal/core/domain"
	"github.com/dockpanel/dockpanel/internal/core/ports"
)

// SDKSource lists containers through the Docker Engine API instead of the
// CLI. Same contract as CLISource; chosen via configuration.
type SDKSource struct {
	cli *client.Client
}

// NewSDKSource connects to the local daemon using the standard DOCKER_*
// environment settings.
func NewSDKSource() (*SDKSource, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}
	return &SDKSource{cli: cli}, nil
}

// ListContainers returns every container known to the daemon, mapped to
// the same records the CLI source produces.
func (s *SDKSource) ListContainers(ctx context.Context) ([]domain.Container, error) {
	containers, err := s.cli.ContainerList(ctx, types.ContainerListOptions{All: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrInventoryUnavailable, err)
	}

	result := []domain.Container{}
	for _, c := range containers {
		names := make([]string, 0, len(c.Names))
		for _, n := range c.Names {
			// The engine reports names with a leading slash.
			names = append(names, strings.TrimPrefix(n, "/"))
		}

		id := c.ID
		if len(id) > 12 {
			id = id[:12]
		}

		bindings := make([]domain.PortBinding, 0, len(c.Ports))
		for _, p := range c.Ports {
			b := domain.PortBinding{
				IP:          p.IP,
				PrivatePort: int(p.PrivatePort),
				Type:        p.Type,
			}
			if p.PublicPort != 0 {
				pub := int(p.PublicPort)
				b.PublicPort = &pub
			}
			bindings = append(bindings, b)
		}

		state := c.State
		if state == "" {
			state = DeriveState(c.Status)
		}

		result = append(result, domain.Container{
			ID:     id,
			Names:  names,
			Image:  c.Image,
			State:  state,
			Status: c.Status,
			Ports:  bindings,
		})
	}
	return result, nil
}

// Close releases the underlying engine connection.
func (s *SDKSource) Close() error {
	return s.cli.Close()
}
