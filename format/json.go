package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kobol/tree"
)

type JSONEncoder struct {
	Options
	w io.Writer
}

func NewJSONEncoder(w io.Writer, opts Options) *JSONEncoder {
	return &JSONEncoder{Options: opts, w: w}
}

func (e *JSONEncoder) Encode(root *tree.Node) error {
	text, err := e.MarshalText(root)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText(root *tree.Node) ([]byte, error) {
	doc := e.nodeToJSON(root)
	doc.File = e.File
	return json.MarshalIndent(doc, "", "  ")
}

type jsonNode struct {
	Kind      string      `json:"kind"`
	Namespace string      `json:"namespace,omitempty"`
	File      string      `json:"file,omitempty"`
	Span      *jsonSpan   `json:"span,omitempty"`
	Token     *string     `json:"token,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
	Children  []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (e *JSONEncoder) nodeToJSON(n *tree.Node) *jsonNode {
	jn := &jsonNode{Kind: n.Kind, Namespace: n.Namespace}
	switch {
	case n.Token != nil:
		jn.Kind = "token"
		text := n.Token.Text()
		jn.Token = &text
		for _, tag := range n.Token.Tags().Slice() {
			jn.Tags = append(jn.Tags, tag.String())
		}
	case n.Kind == "":
		jn.Kind = "document"
	}

	if e.Positions {
		if span, ok := n.Span(); ok {
			jn.Span = &jsonSpan{
				Start: jsonPosition{Line: span.Start.Line, Column: span.Start.Column},
				End:   jsonPosition{Line: span.End.Line, Column: span.End.Column},
			}
		}
	}

	for _, child := range n.Children {
		if child.Token != nil && !e.Filter.keep(child.Token) {
			continue
		}
		jn.Children = append(jn.Children, e.nodeToJSON(child))
	}
	return jn
}
