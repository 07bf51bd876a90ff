// Package classify assigns a topic category by counting keyword hits
package classify

import (
	"bytes"
	"encoding/json"
	"strings"
)

// General is returned when no category keyword occurs in the text
const General = "general"

// noMatchConfidence is the confidence reported alongside General
const noMatchConfidence = 0.1

// maxConfidence caps every matched confidence
const maxConfidence = 0.9

// Category is one named keyword set
type Category struct {
	Name     string
	Keywords []string
}

// Table is an ordered, read-only list of categories
// order decides ties and the order categories are listed on the wire
type Table struct {
	cats []Category
}

// NewTable copies cats so later edits by the caller cannot leak in
func NewTable(cats ...Category) *Table {
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = Category{Name: c.Name, Keywords: append([]string(nil), c.Keywords...)}
	}
	return &Table{cats: out}
}

// Names lists category names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.cats))
	for i, c := range t.cats {
		names[i] = c.Name
	}
	return names
}

// Keywords returns a copy of the keyword list for name, or nil
func (t *Table) Keywords(name string) []string {
	for _, c := range t.cats {
		if c.Name == name {
			return append([]string(nil), c.Keywords...)
		}
	}
	return nil
}

// Result is the outcome of Classify
type Result struct {
	Category   string
	Confidence float64
	Hits       int
}

// Classify scores lowered against every category
// a keyword counts once if it occurs anywhere as a substring; lowered must
// already be lower-cased. The winner has the most hits, ties go to the
// earlier category, and confidence is hits over the winner's own keyword count
func (t *Table) Classify(lowered string) Result {
	best, bestHits := -1, 0
	for i, c := range t.cats {
		hits := 0
		for _, kw := range c.Keywords {
			if strings.Contains(lowered, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = i, hits
		}
	}
	if best < 0 {
		return Result{Category: General, Confidence: noMatchConfidence}
	}
	win := t.cats[best]
	return Result{
		Category:   win.Name,
		Confidence: min(maxConfidence, float64(bestHits)/float64(len(win.Keywords))),
		Hits:       bestHits,
	}
}

// MarshalJSON emits {"categories":[...],"keywords":{...}} keeping table order in both
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	names, err := json.Marshal(t.Names())
	if err != nil {
		return nil, err
	}
	buf.WriteString(`{"categories":`)
	buf.Write(names)
	buf.WriteString(`,"keywords":{`)
	for i, c := range t.cats {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		kws := c.Keywords
		if kws == nil {
			kws = []string{}
		}
		v, err := json.Marshal(kws)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}
