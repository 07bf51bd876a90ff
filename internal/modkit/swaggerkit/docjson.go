package swaggerkit

import (
	"encoding/json"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"

	"postanalyzer/internal/platform/config"
	"postanalyzer/internal/platform/logger"
	"postanalyzer/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

// mutators holds one mutator per owner so remounting replaces rather than stacks
var (
	mutMu    sync.RWMutex
	mutators = map[string]SpecMutator{}
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() []byte { return docs.Spec }

// Register sets the spec mutator for owner, usually a module name
// a nil m removes it; mutators run in owner order on every served document
func Register(owner string, m SpecMutator) {
	mutMu.Lock()
	defer mutMu.Unlock()
	if m == nil {
		delete(mutators, owner)
		return
	}
	mutators[owner] = m
}

func applyMutators(spec map[string]any) {
	mutMu.RLock()
	defer mutMu.RUnlock()
	for _, owner := range slices.Sorted(maps.Keys(mutators)) {
		mutators[owner](spec)
	}
}

// serveDocJSON serves the embedded spec with the shared error responses filled in
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal(docReader(), &spec); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("openapi document is not valid JSON")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/")

		cfg := config.New().Prefix("ML_API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		addDefaultResponse(spec, "500", "Internal Server Error", map[string]any{
			"detail":     "Analysis failed: sentiment chain exhausted",
			"code":       0,
			"request_id": "2f1c8a9e-6c1b-4e0b-9a57-3c0f2d7e8b11",
		})
		addDefaultResponse(spec, "400", "Bad Request", map[string]any{
			"detail":     "Text cannot be empty",
			"code":       4,
			"request_id": "2f1c8a9e-6c1b-4e0b-9a57-3c0f2d7e8b11",
		})

		applyMutators(spec)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the spec is OAS 3.0 and has a servers array
// swagger http ui can't render 3.1 yet, so downconvert if needed
func ensureServers(spec map[string]any, url string) {
	if _, hasSwagger := spec["swagger"]; hasSwagger {
		spec["openapi"] = "3.0.3"
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureErrorResponseDefinition adds the ErrorResponse schema if missing
// it mirrors the runtime error body
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"detail":     map[string]any{"type": "string"},
			"code":       map[string]any{"type": "integer", "format": "int32"},
			"field":      map[string]any{"type": "string"},
			"request_id": map[string]any{"type": "string"},
		},
		"required": []any{"detail", "code"},
	}
}

// addDefaultResponse injects status into every operation that does not declare it
func addDefaultResponse(spec map[string]any, status, description string, example map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	resp := map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
