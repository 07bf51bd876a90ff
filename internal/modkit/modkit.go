// Package modkit builds API modules from shared deps and functional options
package modkit

import "postanalyzer/internal/modkit/module"

// Module is what every New in services/api returns
// aliased so constructors and the registry agree on a single contract
type Module = module.Module
