// Command postanalyzer-analyze runs the analysis pipeline once, outside the HTTP service
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"

	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/keyphrase"
	"postanalyzer/internal/core/sentiment"
	"postanalyzer/internal/platform/config"
	perr "postanalyzer/internal/platform/errors"
	"postanalyzer/internal/platform/logger"

	analysissvc "postanalyzer/internal/services/api/analysis/service"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Get().Error().Err(err).Msg("postanalyzer-analyze failed")
		os.Exit(1)
	}
}

// run parses args, analyzes -text (or all of stdin) and writes one JSON document to stdout
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	root := config.New()
	sentCfg := root.Prefix("ML_SENTIMENT_")
	anCfg := root.Prefix("ML_ANALYSIS_")

	fs := flag.NewFlagSet("postanalyzer-analyze", flag.ContinueOnError)
	var (
		text       = fs.String("text", "", "text to analyze; stdin when empty")
		strategies = fs.String("strategies", strings.Join(sentCfg.MayCSV("STRATEGIES", sentiment.DefaultStrategies), ","), "sentiment chain order")
		model      = fs.String("model", sentCfg.MayString("MODEL_PATH", ""), "transformer model directory")
		strip      = fs.Bool("strip-markdown", sentCfg.MayBool("STRIP_MARKDOWN", false), "render markdown to plain text first")
		phrases    = fs.Int("phrases", anCfg.MayPositiveInt("KEY_PHRASES", keyphrase.DefaultMax), "max key phrases")
		catsFile   = fs.String("categories-file", anCfg.MayString("CATEGORIES_FILE", ""), "category table JSON; the shipped table when empty")
		pretty     = fs.Bool("pretty", false, "indent the JSON output")
		showCats   = fs.Bool("categories", false, "print the category table and exit")
	)
	if err := fs.Parse(args); err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad flags")
	}

	table := classify.Default
	if *catsFile != "" {
		t, err := classify.LoadFile(*catsFile)
		if err != nil {
			return err
		}
		table = t
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if *showCats {
		return enc.Encode(table)
	}

	in := *text
	if in == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "read stdin")
		}
		in = string(b)
	}

	chain := sentiment.Build(sentiment.Options{
		Strategies:    strings.Split(*strategies, ","),
		ModelPath:     *model,
		StripMarkdown: *strip,
	})
	defer func() {
		if err := chain.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close sentiment strategies")
		}
	}()

	res, err := analysissvc.New(chain, table, *phrases).Analyze(ctx, in)
	if err != nil {
		return err
	}
	return enc.Encode(res)
}
