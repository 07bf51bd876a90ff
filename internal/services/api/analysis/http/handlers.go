// Package http provides http transport for text analysis
package http

import (
	stdhttp "net/http"

	"postanalyzer/internal/modkit/httpkit"
	"postanalyzer/internal/services/api/analysis/domain"
	svc "postanalyzer/internal/services/api/analysis/service"
)

// Options tune request decoding
type Options struct {
	// MaxBody caps the request body in bytes; 0 disables the cap
	MaxBody int64
}

// Register mounts analysis endpoints on the given router
func Register(r httpkit.Router, s svc.Service, o Options) {
	h := &handlers{svc: s}

	// unknown body fields are ignored, like the clients have always relied on
	httpkit.PostJSON(r, "/analyze", h.analyze, httpkit.JSONOptions{MaxBytes: o.MaxBody})
	httpkit.Get(r, "/categories", h.categories)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /analyze Analysis analyze
// @Summary Analyze a text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeRequest true "Text"
// @Success 200 {object} domain.AnalysisResult "ok"
// @Router /analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeRequest) (any, error) {
	return h.svc.Analyze(r.Context(), *in.Text)
}

// swagger:route GET /categories Analysis categories
// @Summary Categories and their keywords, in table order
// @Tags Analysis
// @Produce json
// @Router /categories [get]
func (h *handlers) categories(_ *stdhttp.Request) (any, error) {
	return h.svc.Categories(), nil
}
