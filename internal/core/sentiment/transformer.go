package sentiment

import (
	"context"
	"os"
	"strings"
	"sync"

	perr "postanalyzer/internal/platform/errors"
)

// NameTransformer is the config name of the local model strategy
const NameTransformer = "transformer"

// labelScore is one class of a text classification output
type labelScore struct {
	Label string
	Score float64
}

// classifier runs a sentiment model over a single text
type classifier interface {
	Classify(text string) ([]labelScore, error)
	Close() error
}

// openClassifier loads the model at path; swapped in tests
var openClassifier = openModel

// Transformer scores text with a locally loaded text classification model
type Transformer struct {
	mu  sync.Mutex
	cls classifier
}

// NewTransformer loads the model in modelPath
// it returns an Unavailable error when the path is unset, missing, or the runtime cannot load it
func NewTransformer(modelPath string) (*Transformer, error) {
	if strings.TrimSpace(modelPath) == "" {
		return nil, perr.Unavailablef("no model path configured")
	}
	if _, err := os.Stat(modelPath); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "model not found at %s", modelPath)
	}
	cls, err := openClassifier(modelPath)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "model session failed to initialise")
	}
	return &Transformer{cls: cls}, nil
}

// Name implements Estimator
func (t *Transformer) Name() string { return NameTransformer }

// Estimate signs the top label score: positive labels count +score, negative -score, others 0
// subjectivity is |polarity|
func (t *Transformer) Estimate(ctx context.Context, text string) (Scores, error) {
	if err := ctx.Err(); err != nil {
		return Scores{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cls == nil {
		return Scores{}, perr.Unavailablef("model closed")
	}
	out, err := t.cls.Classify(text)
	if err != nil {
		return Scores{}, perr.Wrap(err, perr.ErrorCodeUnknown, "model inference failed")
	}
	if len(out) == 0 {
		return Scores{}, perr.Internalf("model returned no labels")
	}
	top := out[0]
	for _, ls := range out[1:] {
		if ls.Score > top.Score {
			top = ls
		}
	}
	p := signedScore(top)
	if p < 0 {
		return Scores{Polarity: p, Subjectivity: -p}, nil
	}
	return Scores{Polarity: p, Subjectivity: p}, nil
}

// signedScore maps a label like POSITIVE/NEGATIVE (or pos/neg) to a signed score
func signedScore(ls labelScore) float64 {
	l := strings.ToLower(ls.Label)
	score := max(0, min(1, ls.Score))
	switch {
	case strings.HasPrefix(l, "pos"):
		return score
	case strings.HasPrefix(l, "neg"):
		return -score
	default:
		return 0
	}
}

// Close releases the model session; later Estimate calls fail
func (t *Transformer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cls == nil {
		return nil
	}
	err := t.cls.Close()
	t.cls = nil
	return err
}
