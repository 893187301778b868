package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/dockpanel/dockpanel/internal/core/domain"
	"github.com/dockpanel/dockpanel/internal/core/ports"
)

// cliRecord is one line of `docker ps -a --format '{{json .}}'`. Older
// CLI builds emit "Id" instead of "ID", so both spellings are accepted.
type cliRecord struct {
	ID     string `json:"ID"`
	AltID  string `json:"Id"`
	Names  string `json:"Names"`
	Image  string `json:"Image"`
	State  string `json:"State"`
	Status string `json:"Status"`
	Ports  string `json:"Ports"`
}

// CLISource lists containers by shelling out to the docker CLI and
// normalizing its line-oriented JSON output. It implements
// ports.InventorySource.
type CLISource struct {
	binary  string
	timeout time.Duration

	// run executes the listing command; swapped out in tests.
	run func(ctx context.Context, binary string) ([]byte, error)
}

// NewCLISource creates a CLI-backed inventory source. timeout bounds each
// invocation so a hung docker daemon cannot pin a request forever.
func NewCLISource(binary string, timeout time.Duration) *CLISource {
	if binary == "" {
		binary = "docker"
	}
	return &CLISource{
		binary:  binary,
		timeout: timeout,
		run:     runDockerPS,
	}
}

func runDockerPS(ctx context.Context, binary string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, "ps", "-a", "--format", "{{json .}}")
	return cmd.Output()
}

// ListContainers returns every container on the host, running or stopped.
// The mapping is all-or-nothing: if any line of the CLI output fails to
// decode, the whole listing fails with ports.ErrInventoryUnavailable
// rather than silently dropping records. The child process is killed when
// the caller's context is cancelled or the timeout expires.
func (s *CLISource) ListContainers(ctx context.Context) ([]domain.Container, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	out, err := s.run(ctx, s.binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ports.ErrInventoryUnavailable, s.binary, err)
	}

	result := []domain.Container{}
	for _, line := range strings.Split(strings.ReplaceAll(string(out), "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var rec cliRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%w: malformed listing line: %v", ports.ErrInventoryUnavailable, err)
		}
		result = append(result, rec.toDomain())
	}
	return result, nil
}

func (r cliRecord) toDomain() domain.Container {
	id := r.ID
	if id == "" {
		id = r.AltID
	}

	names := []string{}
	if r.Names != "" {
		names = append(names, strings.TrimPrefix(r.Names, "/"))
	}

	state := r.State
	if state == "" {
		state = DeriveState(r.Status)
	}

	return domain.Container{
		ID:     id,
		Names:  names,
		Image:  r.Image,
		State:  state,
		Status: r.Status,
		Ports:  ParsePortsField(r.Ports),
	}
}
