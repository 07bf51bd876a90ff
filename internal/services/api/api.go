// Package api provides the HTTP API for the application
package api

import (
	"time"

	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/sentiment"
	"postanalyzer/internal/platform/config"
	"postanalyzer/internal/platform/logger"
	phttp "postanalyzer/internal/platform/net/http"

	"postanalyzer/internal/modkit"
	"postanalyzer/internal/modkit/httpkit"
	"postanalyzer/internal/modkit/module"
	"postanalyzer/internal/modkit/swaggerkit"

	analysismod "postanalyzer/internal/services/api/analysis/module"
	metamod "postanalyzer/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Sentiment      *sentiment.Chain
	Categories     *classify.Table
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
}

// FromConfig reads the ML_API_* toggles and middleware settings
// Logger, Sentiment and Categories are left for the caller to fill in
func FromConfig(cfg config.Conf) Options {
	api := cfg.Prefix("ML_API_")
	return Options{
		Config: cfg,
		Stack: httpkit.StackOptions{
			CORSOrigins: api.MayCSV("CORS_ORIGINS", []string{"*"}),
			Timeout:     api.MayDuration("TIMEOUT", 30*time.Second),
			Slow:        api.MayDuration("SLOW", 500*time.Millisecond),
		},
		EnableSwagger:  api.MayBool("SWAGGER", true),
		EnableProfiler: api.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router at the root
// r must not have routes yet since the common stack is installed with Use
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:        opt.Logger,
		Cfg:        opt.Config,
		Sentiment:  opt.Sentiment,
		Categories: opt.Categories,
	}

	analysis := analysismod.New(deps, analysismod.FromConfig(deps.Cfg))
	// publish analysis first; meta resolves its readiness port by module name
	module.Register(analysis)
	ready := module.MustPortsAs[analysismod.Ports](analysis.Name()).Readiness

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Readiness: ready})),
		analysis,
	}

	// the stack goes on the root mux so 404/405 answers carry request ids too
	r.Use(httpkit.CommonStack(opt.Stack)...)

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	for _, m := range mods {
		module.Register(m)
		m.MountRoutes(r)
	}

	deps.Logger().Info().
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Strs("sentiment_methods", opt.Sentiment.Methods()).
		Msg("api mounted")
}
