package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"postanalyzer/internal/core/classify"
	perr "postanalyzer/internal/platform/errors"
	"postanalyzer/internal/services/api/analysis/domain"
)

const sample = "I love this new programming framework, it's amazing!"

func TestRun_Analyze(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
	}{
		{"text flag", []string{"-strategies", "vader", "-text", sample}, ""},
		{"stdin", []string{"-strategies", "vader"}, sample},
		{"pretty", []string{"-strategies", "vader,lexicon", "-pretty", "-text", sample}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), c.args, strings.NewReader(c.stdin), &out); err != nil {
				t.Fatalf("run: %v", err)
			}
			var res domain.AnalysisResult
			if err := json.Unmarshal(out.Bytes(), &res); err != nil {
				t.Fatalf("output is not a result: %v\n%s", err, out.String())
			}
			if res.TextCategory != "technical" || res.WordCount != 8 || res.SentimentLabel != "positive" {
				t.Fatalf("result = %+v", res)
			}
		})
	}
}

func TestRun_PhrasesFlag(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-strategies", "lexicon", "-phrases", "2", "-text", sample}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var res domain.AnalysisResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if strings.Join(res.KeyPhrases, ",") != "love,programming" {
		t.Fatalf("key_phrases = %v", res.KeyPhrases)
	}
}

func TestRun_Categories(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-categories"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want, _ := json.Marshal(classify.Default)
	if strings.TrimSpace(out.String()) != string(want) {
		t.Fatalf("categories = %s", out.String())
	}

	p := filepath.Join(t.TempDir(), "cats.json")
	if err := os.WriteFile(p, []byte(`{"categories":["pets"],"keywords":{"pets":["dog"]}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := run(context.Background(), []string{"-categories-file", p, "-strategies", "vader", "-text", "my dog"}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run with file: %v", err)
	}
	if !strings.Contains(out.String(), `"text_category":"pets"`) {
		t.Fatalf("custom table not used: %s", out.String())
	}
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		stdin string
		code  perr.ErrorCode
	}{
		{"unknown flag", []string{"-nope"}, "", perr.ErrorCodeInvalidArgument},
		{"empty stdin", []string{"-strategies", "vader"}, "   \n", perr.ErrorCodeValidation},
		{"missing table", []string{"-categories-file", filepath.Join(t.TempDir(), "none.json")}, "", perr.ErrorCodeNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), c.args, strings.NewReader(c.stdin), &out)
			if !perr.IsCode(err, c.code) {
				t.Fatalf("err = %v, want code %v", err, c.code)
			}
			if out.Len() != 0 {
				t.Fatalf("unexpected output: %s", out.String())
			}
		})
	}
}
