package httpkit

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "postanalyzer/internal/platform/errors"
)

// mkReq builds an *http.Request with an optional body
func mkReq(t *testing.T, method string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, "http://x.test/y", body)
	if err != nil {
		t.Fatalf("mkReq: %v", err)
	}
	return req
}

// run executes a Handler and returns status code and body
func run(h Handler, r *http.Request) (int, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()

	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestHandle_PassThrough(t *testing.T) {
	h := Handle(func(_ *http.Request) Response {
		return Response{Status: http.StatusAccepted, Body: "made"}
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d", http.StatusAccepted, code)
	}
	if !strings.Contains(body, "made") {
		t.Fatalf("expected body to contain %q, got %q", "made", body)
	}
}

func TestCall_PlainValue_NoEnvelope(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return map[string]string{"a": "1"}, nil
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if strings.TrimSpace(body) != `{"a":"1"}` {
		t.Fatalf("expected raw body, got %q", body)
	}
}

func TestCall_ErrorPath(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return nil, perr.Unavailablef("model offline")
	})
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	if !strings.Contains(body, `"detail":"model offline"`) {
		t.Fatalf("expected detail in body, got %q", body)
	}
}

func TestJSON_DecodesAndValidates(t *testing.T) {
	type in struct {
		Text *string `json:"text" validate:"required"`
	}
	h := JSON(func(_ *http.Request, got in) (any, error) {
		return map[string]string{"echo": *got.Text}, nil
	})

	code, body := run(h, mkReq(t, http.MethodPost, strings.NewReader(`{"text":"hi"}`)))
	if code != http.StatusOK || !strings.Contains(body, `"echo":"hi"`) {
		t.Fatalf("got %d %q", code, body)
	}

	code, body = run(h, mkReq(t, http.MethodPost, strings.NewReader(`{}`)))
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("missing field: got %d %q", code, body)
	}
	if !strings.Contains(body, `"field":"text"`) {
		t.Fatalf("expected field in body, got %q", body)
	}

	code, _ = run(h, mkReq(t, http.MethodPost, strings.NewReader(`{"text":`)))
	if code != http.StatusBadRequest {
		t.Fatalf("bad json: got %d", code)
	}
}

func TestJSON_OptionsAllowUnknown(t *testing.T) {
	type in struct {
		Text string `json:"text"`
	}
	fn := func(_ *http.Request, got in) (any, error) { return got.Text, nil }

	strict := JSON(fn)
	if code, _ := run(strict, mkReq(t, http.MethodPost, strings.NewReader(`{"text":"a","x":1}`))); code != http.StatusBadRequest {
		t.Fatalf("strict decode should reject unknown fields, got %d", code)
	}

	loose := JSON(fn, JSONOptions{MaxBytes: 1 << 10})
	if code, body := run(loose, mkReq(t, http.MethodPost, strings.NewReader(`{"text":"a","x":1}`))); code != http.StatusOK {
		t.Fatalf("loose decode: got %d %q", code, body)
	}
}

func TestError_ForeignErrorIs500(t *testing.T) {
	h := Handle(func(*http.Request) Response { return Error(errors.New("nah")) })
	code, body := run(h, mkReq(t, http.MethodGet, nil))
	if code != http.StatusInternalServerError || !strings.Contains(body, `"detail":"nah"`) {
		t.Fatalf("got %d %q", code, body)
	}
	if resp := OK(1); resp.Status != http.StatusOK {
		t.Fatalf("OK status = %d", resp.Status)
	}
}
