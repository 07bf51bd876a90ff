package module

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postanalyzer/internal/core/sentiment"
	modkit "postanalyzer/internal/modkit"
	phttp "postanalyzer/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestModule_RootMountAndPorts(t *testing.T) {
	chain := sentiment.NewChain(false, sentiment.NewVADER())
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Readiness: chain}))
	if m.Name() != "meta" || m.Ports() != nil {
		t.Fatalf("name=%q ports=%v", m.Name(), m.Ports())
	}

	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/ready", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"status":"ok"`) || !strings.Contains(body, `"methods":["vader","lexicon"]`) {
		t.Fatalf("body = %s", body)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("health status = %d", rr.Code)
	}
}

func TestModule_WithoutPorts(t *testing.T) {
	m := New(modkit.Deps{}, modkit.WithPrefix("/meta"))
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/meta/ready", nil))
	if rr.Code != stdhttp.StatusOK || !strings.Contains(rr.Body.String(), `"skipped"`) {
		t.Fatalf("got %d %s", rr.Code, rr.Body.String())
	}
}
