// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"postanalyzer/internal/core/sentiment"
	"postanalyzer/internal/core/version"
	"postanalyzer/internal/modkit/httpkit"
)

// Readiness is satisfied by the analysis module's readiness port
type Readiness interface {
	Statuses() []sentiment.Status
	Methods() []string
}

// Deps are the handler dependencies
type Deps struct {
	// Readiness may be nil, which reports every check as skipped
	Readiness Readiness
	Now       func() time.Time
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload; the body is fixed so existing probes keep matching
type HealthResponse struct {
	Status  string `json:"status"  example:"healthy"`
	Message string `json:"message" example:"ML service is running"`
}

// ReadyCheck describes a single strategy check
type ReadyCheck struct {
	Name   string `json:"name"   example:"transformer"`
	Status string `json:"status" example:"unavailable"` // ok unavailable skipped
	Error  string `json:"error,omitempty" example:"no model path configured"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status  string       `json:"status"  example:"degraded"` // ok degraded
	Checks  []ReadyCheck `json:"checks"`
	Methods []string     `json:"methods" example:"vader,lexicon"`
	Now     string       `json:"now"     example:"2026-10-19T13:05:00Z"`
}

// swagger:route GET /health Meta health
// @Summary Liveness check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{Status: "healthy", Message: "ML service is running"}, nil
}

// swagger:route GET /ready Meta ready
// @Summary Sentiment strategy readiness
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	now := h.deps.Now().UTC().Format(time.RFC3339)
	if h.deps.Readiness == nil {
		return ReadyResponse{
			Status:  "degraded",
			Checks:  []ReadyCheck{{Name: "sentiment", Status: "skipped"}},
			Methods: []string{},
			Now:     now,
		}, nil
	}

	overall := "ok"
	statuses := h.deps.Readiness.Statuses()
	checks := make([]ReadyCheck, 0, len(statuses))
	for _, s := range statuses {
		c := ReadyCheck{Name: s.Name, Status: "ok"}
		if !s.Available {
			c.Status, c.Error = "unavailable", s.Reason
			overall = "degraded"
		}
		checks = append(checks, c)
	}
	return ReadyResponse{
		Status:  overall,
		Checks:  checks,
		Methods: h.deps.Readiness.Methods(),
		Now:     now,
	}, nil
}

// swagger:route GET /version Meta version
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}
