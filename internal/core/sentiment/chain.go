package sentiment

import (
	"context"
	"fmt"
	"io"
	"strings"

	"postanalyzer/internal/core/textproc"
	perr "postanalyzer/internal/platform/errors"
	"postanalyzer/internal/platform/logger"
)

// DefaultStrategies is the chain order used when none is configured
var DefaultStrategies = []string{NameVADER, NameTransformer, NameLexicon}

// Options configures Build
type Options struct {
	// Strategies lists strategy names in priority order
	Strategies []string
	// ModelPath is the model directory for the transformer strategy
	ModelPath string
	// StripMarkdown renders markdown input to plain text before scoring
	StripMarkdown bool
}

// Status reports whether a configured strategy made it into the chain
type Status struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// Chain tries each available strategy in order until one succeeds
type Chain struct {
	links    []Estimator
	statuses []Status
	strip    bool
}

// factories build a strategy by name; an error means it is unavailable
var factories = map[string]func(Options) (Estimator, error){
	NameVADER:       func(Options) (Estimator, error) { return NewVADER(), nil },
	NameTransformer: func(o Options) (Estimator, error) { return NewTransformer(o.ModelPath) },
	NameLexicon:     func(Options) (Estimator, error) { return NewLexicon(), nil },
}

// Build resolves opt.Strategies into a chain, logging one line per strategy
// unknown and unavailable strategies are skipped. The lexicon strategy never
// fails, so it ends the chain: it is appended when missing and anything listed
// after it is reported unreachable
func Build(opt Options) *Chain {
	log := logger.Named("sentiment")
	names := opt.Strategies
	if len(names) == 0 {
		names = DefaultStrategies
	}

	c := &Chain{strip: opt.StripMarkdown}
	seen := make(map[string]bool, len(names))
	terminal := false
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		if terminal {
			c.statuses = append(c.statuses, Status{Name: name, Reason: "listed after " + NameLexicon})
			log.Warn().Str("strategy", name).Msg("sentiment strategy unreachable; listed after lexicon")
			continue
		}
		mk, ok := factories[name]
		if !ok {
			c.statuses = append(c.statuses, Status{Name: name, Reason: "unknown strategy"})
			log.Warn().Str("strategy", name).Msg("unknown sentiment strategy; skipping")
			continue
		}
		est, err := mk(opt)
		if err != nil {
			c.statuses = append(c.statuses, Status{Name: name, Reason: err.Error()})
			log.Warn().Str("strategy", name).Err(err).Msg("sentiment strategy unavailable")
			continue
		}
		c.links = append(c.links, est)
		c.statuses = append(c.statuses, Status{Name: name, Available: true})
		log.Info().Str("strategy", name).Msg("sentiment strategy loaded")
		terminal = name == NameLexicon
	}

	if !terminal {
		c.links = append(c.links, NewLexicon())
		c.statuses = append(c.statuses, Status{Name: NameLexicon, Available: true})
		log.Info().Str("strategy", NameLexicon).Msg("sentiment strategy appended as terminal fallback")
	}
	return c
}

// NewChain builds a chain from ready estimators, appending the lexicon strategy
// when the last link is not already one
func NewChain(stripMarkdown bool, links ...Estimator) *Chain {
	c := &Chain{strip: stripMarkdown}
	for _, l := range links {
		c.links = append(c.links, l)
		c.statuses = append(c.statuses, Status{Name: l.Name(), Available: true})
	}
	if n := len(c.links); n == 0 || c.links[n-1].Name() != NameLexicon {
		c.links = append(c.links, NewLexicon())
		c.statuses = append(c.statuses, Status{Name: NameLexicon, Available: true})
	}
	return c
}

// Methods lists the names of the available strategies in chain order
func (c *Chain) Methods() []string {
	out := make([]string, len(c.links))
	for i, l := range c.links {
		out[i] = l.Name()
	}
	return out
}

// Statuses reports every configured strategy, available or not
func (c *Chain) Statuses() []Status {
	return append([]Status(nil), c.statuses...)
}

// Estimate returns the first successful strategy result
// a strategy that errors or panics is logged and skipped for this call only
func (c *Chain) Estimate(ctx context.Context, text string) (Result, error) {
	log := logger.C(ctx)
	input := text
	if c.strip {
		input = textproc.PlainText(text)
	}

	var last error
	for _, est := range c.links {
		s, err := safeEstimate(ctx, est, input)
		if err == nil {
			log.Debug().Str("method", est.Name()).Float64("polarity", s.Polarity).Msg("sentiment estimated")
			return Result{Scores: s, Method: est.Name()}, nil
		}
		log.Warn().Str("method", est.Name()).Err(err).Msg("sentiment strategy failed; falling back")
		last = err
	}
	return Result{}, perr.Wrap(last, perr.ErrorCodeUnknown, "every sentiment strategy failed")
}

// safeEstimate turns a strategy panic into an error
func safeEstimate(ctx context.Context, est Estimator, text string) (s Scores, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = perr.PanicErrf("%s panicked: %v", est.Name(), r)
		}
	}()
	return est.Estimate(ctx, text)
}

// Close releases strategy resources such as model sessions
func (c *Chain) Close() error {
	var errs []string
	for _, l := range c.links {
		if cl, ok := l.(io.Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", l.Name(), err))
			}
		}
	}
	if len(errs) > 0 {
		return perr.Internalf("closing sentiment strategies: %s", strings.Join(errs, "; "))
	}
	return nil
}
