// Package module wires text analysis into the API using modkit
package module

import (
	"net/http"

	modkit "postanalyzer/internal/modkit"
	"postanalyzer/internal/modkit/httpkit"
	"postanalyzer/internal/modkit/swaggerkit"
	"postanalyzer/internal/platform/config"
	str "postanalyzer/internal/platform/strings"

	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/keyphrase"
	analysishttp "postanalyzer/internal/services/api/analysis/http"
	analysissvc "postanalyzer/internal/services/api/analysis/service"
)

// Options are read from ML_ANALYSIS_* and ML_API_*
type Options struct {
	KeyPhrases int
	MaxBody    int64
}

// FromConfig reads module options; cfg is the root view
func FromConfig(cfg config.Conf) Options {
	return Options{
		KeyPhrases: cfg.Prefix("ML_ANALYSIS_").MayPositiveInt("KEY_PHRASES", keyphrase.DefaultMax),
		MaxBody:    cfg.Prefix("ML_API_").MayInt64("MAX_BODY", 1<<20),
	}
}

// Module implements the analysis module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	register func(httpkit.Router)

	svc analysissvc.Service
}

// New constructs the analysis module; deps.Sentiment is required
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("analysis"), modkit.WithPrefix("/")}, opts...)...)

	if deps.Sentiment == nil {
		panic("analysis module requires a sentiment chain")
	}
	if o.KeyPhrases < 1 {
		o.KeyPhrases = keyphrase.DefaultMax
	}
	table := deps.CategoriesOrDefault()
	svc := analysissvc.New(deps.Sentiment, table, o.KeyPhrases)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		ports:  Ports{Readiness: deps.Sentiment},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		swaggerkit.Register(m.name, describeLimits(o, table))
		analysishttp.Register(r, m.svc, analysishttp.Options{MaxBody: o.MaxBody})
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix, "" for the root
func (m *Module) Prefix() string { return m.prefix }

// describeLimits documents the configured limits and category names on the served OpenAPI document
func describeLimits(o Options, table *classify.Table) swaggerkit.SpecMutator {
	return func(spec map[string]any) {
		comps, _ := spec["components"].(map[string]any)
		schemas, _ := comps["schemas"].(map[string]any)

		if res, ok := schemas["AnalysisResult"].(map[string]any); ok {
			props, _ := res["properties"].(map[string]any)
			if kp, ok := props["key_phrases"].(map[string]any); ok {
				kp["maxItems"] = o.KeyPhrases
			}
			if cat, ok := props["text_category"].(map[string]any); ok {
				cat["enum"] = append(table.Names(), classify.General)
			}
		}
		if req, ok := schemas["AnalysisRequest"].(map[string]any); ok && o.MaxBody > 0 {
			req["x-max-body-bytes"] = o.MaxBody
		}
	}
}
