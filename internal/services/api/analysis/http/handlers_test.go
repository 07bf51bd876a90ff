package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postanalyzer/internal/core/sentiment"
	phttp "postanalyzer/internal/platform/net/http"
	kit "postanalyzer/internal/platform/testkit"
	"postanalyzer/internal/services/api/analysis/domain"
	svc "postanalyzer/internal/services/api/analysis/service"

	"github.com/go-chi/chi/v5"
)

func newMux(maxBody int64) stdhttp.Handler {
	mux := chi.NewRouter()
	s := svc.New(sentiment.NewChain(false), nil, 5)
	Register(phttp.AdaptChi(mux), s, Options{MaxBody: maxBody})
	return mux
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAnalyze_OK(t *testing.T) {
	rr := do(t, newMux(1<<20), stdhttp.MethodPost, "/analyze", `{"text":"I love this great framework"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
	var got domain.AnalysisResult
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	// lexicon only: 2 positive of 5 tokens
	kit.Approx(t, "sentiment_score", got.SentimentScore, 0.4, 1e-9)
	if got.SentimentLabel != "positive" || got.TextCategory != "technical" || got.WordCount != 5 {
		t.Fatalf("got %+v", got)
	}
	for _, key := range []string{
		`"sentiment_score"`, `"sentiment_label"`, `"subjectivity_score"`, `"text_category"`,
		`"category_confidence"`, `"key_phrases"`, `"word_count"`, `"reading_time_minutes"`,
	} {
		kit.MustContain(t, rr.Body.String(), key)
	}
}

func TestAnalyze_EmptyListNotNull(t *testing.T) {
	rr := do(t, newMux(1<<20), stdhttp.MethodPost, "/analyze", `{"text":"the cat sat"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), `"key_phrases":[]`)
}

func TestAnalyze_Errors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		detail string
	}{
		{"whitespace text", `{"text":"   "}`, 400, `"detail":"Text cannot be empty"`},
		{"empty text", `{"text":""}`, 400, `"detail":"Text cannot be empty"`},
		{"missing text", `{}`, 422, `"field":"text"`},
		{"null text", `{"text":null}`, 422, `"field":"text"`},
		{"malformed", `{"text":`, 400, `"code":5`},
		{"empty body", ``, 400, `"code":5`},
		{"wrong type", `{"text":12}`, 400, `invalid JSON`},
	}
	h := newMux(1 << 20)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := do(t, h, stdhttp.MethodPost, "/analyze", c.body)
			if rr.Code != c.status {
				t.Fatalf("status = %d, want %d body=%s", rr.Code, c.status, rr.Body.String())
			}
			kit.MustContain(t, rr.Body.String(), c.detail)
		})
	}
}

func TestAnalyze_IgnoresUnknownFields(t *testing.T) {
	rr := do(t, newMux(1<<20), stdhttp.MethodPost, "/analyze", `{"text":"hello world","lang":"en"}`)
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAnalyze_BodyLimit(t *testing.T) {
	body := `{"text":"` + strings.Repeat("a", 200) + `"}`
	rr := do(t, newMux(64), stdhttp.MethodPost, "/analyze", body)
	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
	kit.MustContain(t, rr.Body.String(), "exceeds 64 bytes")
}

func TestCategories(t *testing.T) {
	rr := do(t, newMux(0), stdhttp.MethodGet, "/categories", "")
	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.HasPrefix(rr.Body.String(), `{"categories":["technical","personal","business","news","entertainment"],"keywords":{"technical":`) {
		t.Fatalf("body = %s", rr.Body.String())
	}
}
