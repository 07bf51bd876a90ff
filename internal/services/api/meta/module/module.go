// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"

	modkit "postanalyzer/internal/modkit"
	"postanalyzer/internal/modkit/httpkit"
	str "postanalyzer/internal/platform/strings"

	metahttp "postanalyzer/internal/services/api/meta/http"
)

// Ports are the ports the meta module consumes, injected with modkit.WithPorts
type Ports struct {
	Readiness metahttp.Readiness
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
}

// New constructs a meta module with the provided dependencies and options
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/"),
	}, opts...)...)

	var in Ports
	if p, ok := b.Ports.(Ports); ok {
		in = p
	}

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{Readiness: in.Readiness})
		external(r)
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the mount prefix, "" for the root
func (m *Module) Prefix() string { return m.prefix }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
