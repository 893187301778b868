package docker_test

import (
	"testing"

	"github.com/dockpanel/dockpanel/internal/adapters/docker"
)

func TestDeriveState(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Up 2 hours", "running"},
		{"Up About a minute (healthy)", "running"},
		{"Exited (0) 5 minutes ago", "exited"},
		{"Exited (137) 2 days ago", "exited"},
		{"Paused", "paused"},
		{"Up 3 hours (Paused)", "running"}, // prefix match wins over substring
		{"Created", "unknown"},
		{"Restarting (1) 5 seconds ago", "unknown"},
		{"", "unknown"},
		// Case-insensitivity.
		{"up 2 hours", "running"},
		{"UP 2 HOURS", "running"},
		{"exited (1) now", "exited"},
		{"EXITED (1) now", "exited"},
		{"paused", "paused"},
		{"has PAUSED somewhere", "paused"},
		{"cReAtEd", "unknown"},
	}
	for _, tt := range tests {
		if got := docker.DeriveState(tt.status); got != tt.want {
			t.Errorf("DeriveState(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
