// Package module holds the module contract and the port lookups api.Mount uses
// to wire analysis, meta and any later HTTP module together
package module

import (
	phttp "postanalyzer/internal/platform/net/http"
)

// Module is one mountable slice of the ML API
// Name keys the registry; Ports is the set other modules may resolve (nil when none)
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
