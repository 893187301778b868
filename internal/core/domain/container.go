package domain

// Container is one observed container on the host, running or stopped.
// JSON field names match what the UI already consumes, which is the
// Docker Engine API summary shape.
type Container struct {
	ID     string        `json:"Id"`
	Names  []string      `json:"Names"`
	Image  string        `json:"Image"`
	State  string        `json:"State"` // running, exited, paused, unknown
	Status string        `json:"Status"`
	Ports  []PortBinding `json:"Ports"`
}

// PortBinding is one published or exposed port of a container.
// PublicPort is a pointer so an unpublished port stays distinguishable
// from one explicitly published as port 0.
type PortBinding struct {
	IP          string `json:"IP,omitempty"`
	PublicPort  *int   `json:"PublicPort,omitempty"`
	PrivatePort int    `json:"PrivatePort"`
	Type        string `json:"Type"`
}

// Container lifecycle states. The runtime reports these directly; when it
// does not, they are derived from the human-readable status text.
const (
	StateRunning = "running"
	StateExited  = "exited"
	StatePaused  = "paused"
	StateUnknown = "unknown"
)
