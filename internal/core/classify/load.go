package classify

import (
	"encoding/json"
	"os"

	"postanalyzer/internal/core/textproc"
	perr "postanalyzer/internal/platform/errors"
)

// tableDoc is the wire shape MarshalJSON writes and Parse reads back
type tableDoc struct {
	Categories []string            `json:"categories"`
	Keywords   map[string][]string `json:"keywords"`
}

// Parse builds a Table from {"categories":[...],"keywords":{...}}
// categories gives the order; keywords are trimmed and lower-cased so they
// match the lowered text Classify expects
func Parse(data []byte) (*Table, error) {
	var doc tableDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "category table is not valid JSON")
	}
	if len(doc.Categories) == 0 {
		return nil, perr.InvalidArgf("category table lists no categories")
	}

	cats := make([]Category, 0, len(doc.Categories))
	seen := make(map[string]bool, len(doc.Categories))
	for _, raw := range doc.Categories {
		name := textproc.Trim(raw)
		switch {
		case name == "":
			return nil, perr.InvalidArgf("category name is empty")
		case name == General:
			return nil, perr.InvalidArgf("category %q is reserved for texts with no match", General)
		case seen[name]:
			return nil, perr.InvalidArgf("category %q listed twice", name)
		}
		seen[name] = true

		var kws []string
		for _, kw := range doc.Keywords[raw] {
			if kw = textproc.Lower(textproc.Trim(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		if len(kws) == 0 {
			return nil, perr.WithField(perr.InvalidArgf("category %q has no keywords", name), name)
		}
		cats = append(cats, Category{Name: name, Keywords: kws})
	}
	for name := range doc.Keywords {
		if !seen[textproc.Trim(name)] {
			return nil, perr.InvalidArgf("keywords given for unlisted category %q", name)
		}
	}
	return NewTable(cats...), nil
}

// LoadFile reads and parses a category table file
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "category table %s", path)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, perr.WithOp(err, "classify.LoadFile "+path)
	}
	return t, nil
}
