package docker

import (
	"strconv"
	"strings"

	"github.com/dockpanel/dockpanel/internal/core/domain"
)

// ParsePortsField splits the CLI's human-readable ports column
// (e.g. "0.0.0.0:8080->80/tcp, 443/tcp") into individual bindings.
func ParsePortsField(ports string) []domain.PortBinding {
	if ports == "" {
		return []domain.PortBinding{}
	}
	entries := strings.Split(ports, ", ")
	out := make([]domain.PortBinding, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ParsePortSpec(entry))
	}
	return out
}

// ParsePortSpec parses a single port-mapping token as printed by the CLI.
// Published ports look like "ip:pub->priv/type" or "pub->priv/type";
// exposed-but-unpublished ports look like "priv/type". Parsing never
// fails: numeric fields degrade to zero or absent, so one mangled token
// cannot sink an otherwise valid container record.
func ParsePortSpec(entry string) domain.PortBinding {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return domain.PortBinding{PrivatePort: 0, Type: ""}
	}

	if left, right, ok := strings.Cut(entry, "->"); ok {
		privStr, typ, _ := strings.Cut(right, "/")
		priv, _ := strconv.Atoi(privStr)

		b := domain.PortBinding{PrivatePort: priv, Type: typ}
		pubStr := left
		// Last colon, not first: the bind address may be an IPv6 literal.
		if idx := strings.LastIndex(left, ":"); idx != -1 {
			b.IP = left[:idx]
			pubStr = left[idx+1:]
		}
		if pub, err := strconv.Atoi(pubStr); err == nil {
			b.PublicPort = &pub
		}
		return b
	}

	privStr, typ, _ := strings.Cut(entry, "/")
	priv, _ := strconv.Atoi(privStr)
	return domain.PortBinding{PrivatePort: priv, Type: typ}
}
