// Package format writes syntax trees and token lists.
package format

import (
	"io"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/tree"
)

// Encoder writes a syntax tree.
type Encoder interface {
	Encode(root *tree.Node) error
	MarshalText(root *tree.Node) ([]byte, error)
}

// Filter selects the tokens an encoder writes. A nil Filter keeps all of
// them.
type Filter func(tok *data.Token) bool

func (f Filter) keep(tok *data.Token) bool {
	return f == nil || f(tok)
}

// New returns the encoder for a format name: "xml" or "json".
func New(name string, w io.Writer, opts Options) (Encoder, bool) {
	switch name {
	case "xml":
		return NewXMLEncoder(w, opts), true
	case "json":
		return NewJSONEncoder(w, opts), true
	}
	return nil, false
}

// Options are shared by the tree encoders.
type Options struct {
	Filter    Filter
	Positions bool
	File      string
}
