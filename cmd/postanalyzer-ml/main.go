// @title         Post Analyzer ML API
// @version       1.0.0
// @description   Sentiment, category, key phrase and reading time analysis for post text

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/sentiment"
	"postanalyzer/internal/platform/config"
	"postanalyzer/internal/platform/config/raw"
	"postanalyzer/internal/platform/logger"
	phttp "postanalyzer/internal/platform/net/http"

	"postanalyzer/internal/services/api"
)

func main() {
	// .env first so LOG_* and ML_* can live there
	envFile := raw.New().Get("ENV_FILE", ".env")
	loaded, envErr := config.LoadDotEnv(envFile)

	// bring up logging early
	l := logger.Get()
	if envErr != nil {
		l.Warn().Err(envErr).Str("path", envFile).Msg("could not read env file")
	} else if loaded {
		l.Debug().Str("path", envFile).Msg("env file loaded")
	}

	root := config.New()
	sentCfg := root.Prefix("ML_SENTIMENT_")

	chain := sentiment.Build(sentiment.Options{
		Strategies:    sentCfg.MayCSV("STRATEGIES", sentiment.DefaultStrategies),
		ModelPath:     sentCfg.MayString("MODEL_PATH", ""),
		StripMarkdown: sentCfg.MayBool("STRIP_MARKDOWN", false),
	})
	defer func() {
		if err := chain.Close(); err != nil {
			l.Error().Err(err).Msg("failed to close sentiment strategies")
		}
	}()

	// categories: the shipped table unless a file overrides it
	var table *classify.Table
	if path := root.Prefix("ML_ANALYSIS_").MayString("CATEGORIES_FILE", ""); path != "" {
		t, err := classify.LoadFile(path)
		if err != nil {
			l.Panic().Err(err).Str("path", path).Msg("category table load failed")
		}
		l.Info().Str("path", path).Strs("categories", t.Names()).Msg("category table loaded")
		table = t
	}

	// http server (reads ML_API_ADDR / ML_API_SHUTDOWN_TIMEOUT)
	srv := phttp.NewServer(root.Prefix("ML_API_"))

	opts := api.FromConfig(root)
	opts.Logger = l
	opts.Sentiment = chain
	opts.Categories = table
	api.Mount(srv.Router(), opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		stop()
		_ = chain.Close()
		os.Exit(1)
	}
	l.Info().Msg("shutdown complete")
}
