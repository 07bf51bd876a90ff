// Package modkit provides module wiring and core deps
package modkit

import (
	"postanalyzer/internal/core/classify"
	"postanalyzer/internal/core/sentiment"
	"postanalyzer/internal/platform/config"
	"postanalyzer/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// Sentiment is the strategy chain built once at startup
	Sentiment *sentiment.Chain
	// Categories is the keyword table; nil means classify.Default
	Categories *classify.Table
}

// CategoriesOrDefault returns the configured table or the shipped one
func (d Deps) CategoriesOrDefault() *classify.Table {
	if d.Categories == nil {
		return classify.Default
	}
	return d.Categories
}

// Logger returns Log or the root logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log == nil {
		return logger.Get()
	}
	return d.Log
}
