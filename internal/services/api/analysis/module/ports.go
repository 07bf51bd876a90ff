package module

import "postanalyzer/internal/services/api/analysis/domain"

// Ports is what the analysis module exposes to other modules
type Ports struct {
	Readiness domain.ReadinessPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
