package check

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCheck is returned when an identifier resolves to no probe.
var ErrUnknownCheck = errors.New("unknown check")

// Registry is the fixed, ordered list of probes for one invocation.
type Registry struct {
	probes  []Probe
	byID    map[string]Probe
	aliases map[string]string
}

// NewRegistry builds the default registry in canonical execution order.
func NewRegistry() *Registry {
	return newRegistry(
		&NodeJSProbe{},
		&OpenClawProbe{},
		&DockerProbe{},
		&SystemProbe{},
		&FoldersProbe{},
		&ConfigProbe{},
		&APIKeysProbe{},
		&NetworkProbe{},
		&LogsProbe{},
	)
}

func newRegistry(probes ...Probe) *Registry {
	r := &Registry{
		byID: make(map[string]Probe, len(probes)),
		aliases: map[string]string{
			"node":          "nodejs",
			"claw":          "openclaw",
			"oc":            "openclaw",
			"configuration": "config",
			"apikeys":       "api-keys",
			"keys":          "api-keys",
			"net":           "network",
			"folder":        "folders",
			"log":           "logs",
		},
	}
	for _, p := range probes {
		r.probes = append(r.probes, p)
		r.byID[p.ID()] = p
	}
	return r
}

// IDs returns the probe identifiers in execution order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.probes))
	for i, p := range r.probes {
		out[i] = p.ID()
	}
	return out
}

// Probes returns the probes in execution order.
func (r *Registry) Probes() []Probe {
	return r.probes
}

// Resolve maps a user-supplied name to a probe, accepting aliases and
// normalizing case, spaces, and underscores.
func (r *Registry) Resolve(name string) (Probe, error) {
	id := strings.ToLower(strings.TrimSpace(name))
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, "_", "-")
	if canonical, ok := r.aliases[id]; ok {
		id = canonical
	}
	if p, ok := r.byID[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownCheck, name, strings.Join(r.IDs(), ", "))
}
