package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "postanalyzer/internal/platform/errors"
	pnet "postanalyzer/internal/platform/net"
	"postanalyzer/internal/platform/net/middleware"
	kit "postanalyzer/internal/platform/testkit"
)

func TestAccessLogZerolog_PassThroughStatusAndBody(t *testing.T) {
	mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ok")
		_, _ = io.WriteString(w, "!")
	})
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusCreated || rr.Body.String() != "ok!" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestAccessLogZerolog_SlowMarkDoesNotAffectResponse(t *testing.T) {
	mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: time.Nanosecond})
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Microsecond)
		_, _ = io.WriteString(w, "slow")
	})
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/slow", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "slow" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestRequestID_GeneratesAndMirrors(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { seen = pnet.RequestID(r.Context()) })

	rr := httptest.NewRecorder()
	middleware.RequestID()(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("expected a generated request id on the context")
	}
	if got := rr.Header().Get(pnet.RequestIDHeader); got != seen {
		t.Fatalf("mirrored header %q != context id %q", got, seen)
	}
	if len(seen) != 36 {
		t.Fatalf("expected uuid shaped id, got %q", seen)
	}
}

func TestRequestID_PropagatesCallerID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { seen = pnet.RequestID(r.Context()) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.RequestIDHeader, "  caller-42 ")
	rr := httptest.NewRecorder()
	middleware.RequestID()(next).ServeHTTP(rr, req)

	if seen != "caller-42" || rr.Header().Get(pnet.RequestIDHeader) != "caller-42" {
		t.Fatalf("caller id not propagated: ctx=%q header=%q", seen, rr.Header().Get(pnet.RequestIDHeader))
	}

	// oversized ids are replaced
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.RequestIDHeader, strings.Repeat("x", 500))
	middleware.RequestID()(next).ServeHTTP(httptest.NewRecorder(), req)
	if len(seen) == 500 {
		t.Fatalf("oversized caller id should be replaced")
	}
}

func TestRecoverJSON_PanicBecomes500(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") })
	h := middleware.RequestID()(middleware.RecoverJSON(next))

	rr := httptest.NewRecorder()
	kit.MustNotPanic(t, func() { h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyze", nil)) })

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rr.Code)
	}
	var body pnet.ErrorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Detail != "panic recovered" || body.Code != perr.ErrorCodePanic || body.RequestID == "" {
		t.Fatalf("bad body: %+v", body)
	}
}

func TestRecoverJSON_AbortHandlerRepanics(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) })
	kit.MustPanic(t, func() {
		middleware.RecoverJSON(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestCompress_GzipWhenAccepted(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"k":"`+strings.Repeat("a", 4<<10)+`"}`)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	middleware.Compress(flate.BestSpeed)(h).ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", rr.Header().Get("Content-Encoding"))
	}
}

func TestCORS_DefaultsAllowAnyOriginAndExposeRequestID(t *testing.T) {
	h := middleware.CORS(middleware.CORSOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow origin = %q, want *", got)
	}
	kit.MustContain(t, rr.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")

	// preflight for POST /analyze
	pre := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	pre.Header.Set("Origin", "http://example.com")
	pre.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, pre)
	if rr.Header().Get("Access-Control-Allow-Methods") != http.MethodPost {
		t.Fatalf("preflight allow methods = %q", rr.Header().Get("Access-Control-Allow-Methods"))
	}
}

func TestWrappers_ReturnHandlers(t *testing.T) {
	if middleware.RealIP() == nil ||
		middleware.Timeout(time.Second) == nil ||
		middleware.NoCache() == nil ||
		middleware.StripSlashes() == nil {
		t.Fatal("expected non nil handlers from wrappers")
	}
}

func TestStripSlashes_RoutesTrailingSlash(t *testing.T) {
	var path string
	h := middleware.StripSlashes()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { path = r.URL.Path }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/", nil))
	if path != "/health" {
		t.Fatalf("path = %q, want /health", path)
	}
}
