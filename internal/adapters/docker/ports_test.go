package docker_test

import (
	"testing"

	"github.com/dockpanel/dockpanel/internal/adapters/docker"
)

func intPtr(v int) *int { return &v }

func TestParsePortSpec(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		ip    string
		pub   *int
		priv  int
		typ   string
	}{
		{"published with ip", "0.0.0.0:8080->80/tcp", "0.0.0.0", intPtr(8080), 80, "tcp"},
		{"published ipv6", ":::8080->80/tcp", "::", intPtr(8080), 80, "tcp"},
		{"published without ip", "8080->80/tcp", "", intPtr(8080), 80, "tcp"},
		{"exposed only", "443/tcp", "", nil, 443, "tcp"},
		{"udp", "0.0.0.0:53->53/udp", "0.0.0.0", intPtr(53), 53, "udp"},
		{"missing type", "9000->9000", "", intPtr(9000), 9000, ""},
		{"exposed missing type", "6379", "", nil, 6379, ""},
		{"surrounding whitespace", "  80/tcp ", "", nil, 80, "tcp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := docker.ParsePortSpec(tt.entry)
			if b.IP != tt.ip {
				t.Errorf("IP = %q, want %q", b.IP, tt.ip)
			}
			if (b.PublicPort == nil) != (tt.pub == nil) {
				t.Fatalf("PublicPort presence = %v, want %v", b.PublicPort != nil, tt.pub != nil)
			}
			if b.PublicPort != nil && *b.PublicPort != *tt.pub {
				t.Errorf("PublicPort = %d, want %d", *b.PublicPort, *tt.pub)
			}
			if b.PrivatePort != tt.priv {
				t.Errorf("PrivatePort = %d, want %d", b.PrivatePort, tt.priv)
			}
			if b.Type != tt.typ {
				t.Errorf("Type = %q, want %q", b.Type, tt.typ)
			}
		})
	}
}

func TestParsePortSpecNeverFails(t *testing.T) {
	// Garbage degrades to zero/absent fields instead of failing the record.
	inputs := []string{"", "   ", "garbage", "a:b->c/d", "->", "->/", ":->/", "x->", "//", "abc->def"}
	for _, in := range inputs {
		b := docker.ParsePortSpec(in)
		if b.PublicPort != nil && in != "" {
			// Only a numeric public side may produce a value.
			t.Errorf("ParsePortSpec(%q) produced PublicPort %d from non-numeric input", in, *b.PublicPort)
		}
	}
}

func TestParsePortSpecNonNumericPublicIsAbsent(t *testing.T) {
	b := docker.ParsePortSpec("0.0.0.0:http->80/tcp")
	if b.PublicPort != nil {
		t.Fatalf("non-numeric public port should be absent, got %d", *b.PublicPort)
	}
	if b.IP != "0.0.0.0" {
		t.Errorf("IP = %q, want 0.0.0.0", b.IP)
	}
	if b.PrivatePort != 80 {
		t.Errorf("PrivatePort = %d, want 80", b.PrivatePort)
	}
}

func TestParsePortSpecExplicitZeroPublic(t *testing.T) {
	// Explicit port 0 stays distinguishable from "not published".
	b := docker.ParsePortSpec("0.0.0.0:0->80/tcp")
	if b.PublicPort == nil || *b.PublicPort != 0 {
		t.Fatalf("explicit zero public port lost: %+v", b)
	}
}

func TestParsePortsField(t *testing.T) {
	got := docker.ParsePortsField("0.0.0.0:8080->80/tcp, 443/tcp")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].IP != "0.0.0.0" || got[0].PublicPort == nil || *got[0].PublicPort != 8080 ||
		got[0].PrivatePort != 80 || got[0].Type != "tcp" {
		t.Errorf("first binding wrong: %+v", got[0])
	}
	if got[1].IP != "" || got[1].PublicPort != nil || got[1].PrivatePort != 443 || got[1].Type != "tcp" {
		t.Errorf("second binding wrong: %+v", got[1])
	}
}

func TestParsePortsFieldEmpty(t *testing.T) {
	if got := docker.ParsePortsField(""); len(got) != 0 {
		t.Fatalf("expected no bindings for empty field, got %d", len(got))
	}
}
