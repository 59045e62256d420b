package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/kobol/data"
)

// LineEncoder writes tokens one per line: range, tags and quoted text,
// separated by tabs.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(tokens []*data.Token) error {
	_, err := e.w.Write(e.MarshalText(tokens))
	return err
}

func (e *LineEncoder) MarshalText(tokens []*data.Token) []byte {
	var sb strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&sb, "%s-%s\t%s\t%q\n", tok.Start(), tok.End(), tok.Tags(), tok.Text())
	}
	return []byte(sb.String())
}
