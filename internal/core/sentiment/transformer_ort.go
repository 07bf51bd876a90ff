//go:build ORT || ALL

package sentiment

import (
	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	perr "postanalyzer/internal/platform/errors"
)

type ortClassifier struct {
	session *hugot.Session
	pipe    *pipelines.TextClassificationPipeline
}

// openModel starts an ONNX runtime session and a text classification pipeline over modelPath
func openModel(modelPath string) (classifier, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, err
	}
	cfg := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "sentimentPipeline",
	}
	pipe, err := hugot.NewPipeline(session, cfg)
	if err != nil {
		_ = session.Destroy()
		return nil, err
	}
	return &ortClassifier{session: session, pipe: pipe}, nil
}

func (o *ortClassifier) Classify(text string) ([]labelScore, error) {
	res, err := o.pipe.RunPipeline([]string{text})
	if err != nil {
		return nil, err
	}
	if len(res.ClassificationOutputs) == 0 {
		return nil, perr.Internalf("pipeline returned no output")
	}
	out := make([]labelScore, 0, len(res.ClassificationOutputs[0]))
	for _, c := range res.ClassificationOutputs[0] {
		out = append(out, labelScore{Label: c.Label, Score: float64(c.Score)})
	}
	return out, nil
}

func (o *ortClassifier) Close() error { return o.session.Destroy() }
