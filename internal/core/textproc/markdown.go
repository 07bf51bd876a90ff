package textproc

import (
	"bytes"
	"io"

	"github.com/russross/blackfriday/v2"
)

// plainRenderer walks the markdown AST and keeps only readable text
// link targets, image urls and raw html are dropped; link text and alt text stay
type plainRenderer struct{}

func (plainRenderer) RenderHeader(io.Writer, *blackfriday.Node) {}
func (plainRenderer) RenderFooter(io.Writer, *blackfriday.Node) {}

func (plainRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	switch node.Type {
	case blackfriday.Text, blackfriday.Code:
		if entering {
			_, _ = w.Write(node.Literal)
		}
	case blackfriday.CodeBlock:
		if entering {
			_, _ = w.Write(node.Literal)
			_, _ = io.WriteString(w, "\n")
		}
	case blackfriday.Softbreak:
		_, _ = io.WriteString(w, " ")
	case blackfriday.Hardbreak:
		_, _ = io.WriteString(w, "\n")
	case blackfriday.HTMLBlock, blackfriday.HTMLSpan:
		return blackfriday.SkipChildren
	case blackfriday.Paragraph, blackfriday.Heading, blackfriday.Item, blackfriday.TableCell:
		if !entering {
			_, _ = io.WriteString(w, "\n")
		}
	}
	return blackfriday.GoToNext
}

// PlainText renders markdown to plain text, one block per line
// if rendering leaves nothing readable the trimmed input is returned instead
func PlainText(md string) string {
	if Trim(md) == "" {
		return Trim(md)
	}
	out := blackfriday.Run([]byte(md),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(plainRenderer{}),
	)
	text := Trim(string(bytes.ToValidUTF8(out, nil)))
	if text == "" {
		return Trim(md)
	}
	return text
}
