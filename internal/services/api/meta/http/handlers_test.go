package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"postanalyzer/internal/core/sentiment"
	phttp "postanalyzer/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type fakeReadiness struct{ st []sentiment.Status }

func (f fakeReadiness) Statuses() []sentiment.Status { return f.st }
func (f fakeReadiness) Methods() []string {
	var out []string
	for _, s := range f.st {
		if s.Available {
			out = append(out, s.Name)
		}
	}
	return out
}

func serve(t *testing.T, d Deps, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	return rr
}

func TestHealth_ExactBody(t *testing.T) {
	rr := serve(t, Deps{}, "/health")
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"status":"healthy","message":"ML service is running"}` {
		t.Fatalf("body = %s", got)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestReady(t *testing.T) {
	fixed := func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	cases := []struct {
		name    string
		deps    Deps
		status  string
		checks  int
		methods string
	}{
		{
			name:   "no readiness port",
			deps:   Deps{Now: fixed},
			status: "degraded", checks: 1, methods: "",
		},
		{
			name: "all loaded",
			deps: Deps{Now: fixed, Readiness: fakeReadiness{st: []sentiment.Status{
				{Name: "vader", Available: true},
				{Name: "lexicon", Available: true},
			}}},
			status: "ok", checks: 2, methods: "vader,lexicon",
		},
		{
			name: "model missing",
			deps: Deps{Now: fixed, Readiness: fakeReadiness{st: []sentiment.Status{
				{Name: "vader", Available: true},
				{Name: "transformer", Reason: "no model path configured"},
				{Name: "lexicon", Available: true},
			}}},
			status: "degraded", checks: 3, methods: "vader,lexicon",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := serve(t, c.deps, "/ready")
			if rr.Code != stdhttp.StatusOK {
				t.Fatalf("status = %d", rr.Code)
			}
			var got ReadyResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatal(err)
			}
			if got.Status != c.status || len(got.Checks) != c.checks {
				t.Fatalf("got %+v", got)
			}
			if strings.Join(got.Methods, ",") != c.methods {
				t.Fatalf("methods = %v", got.Methods)
			}
			if got.Now != "2026-10-19T12:00:00Z" {
				t.Fatalf("now = %q", got.Now)
			}
			for _, ch := range got.Checks {
				if ch.Name == "transformer" && (ch.Status != "unavailable" || ch.Error == "") {
					t.Fatalf("transformer check = %+v", ch)
				}
			}
		})
	}
}

func TestVersion(t *testing.T) {
	rr := serve(t, Deps{}, "/version")
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"service":"postanalyzer-ml"`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
