package format

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/dhamidi/kobol/tree"
)

// XMLEncoder writes a tree as XML. Rules become elements named after the
// rule and tokens become <t> elements holding their text.
type XMLEncoder struct {
	Options
	w io.Writer
}

func NewXMLEncoder(w io.Writer, opts Options) *XMLEncoder {
	return &XMLEncoder{Options: opts, w: w}
}

func (e *XMLEncoder) Encode(root *tree.Node) error {
	text, err := e.MarshalText(root)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *XMLEncoder) MarshalText(root *tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	start := xml.StartElement{Name: xml.Name{Local: "cobol"}}
	if e.File != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "file"}, Value: e.File})
	}
	if err := enc.EncodeToken(start); err != nil {
		return nil, err
	}
	for _, child := range root.Children {
		if err := e.encode(enc, child); err != nil {
			return nil, err
		}
	}
	if err := enc.EncodeToken(start.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (e *XMLEncoder) encode(enc *xml.Encoder, n *tree.Node) error {
	if n.Token != nil {
		if !e.Filter.keep(n.Token) {
			return nil
		}
		start := xml.StartElement{Name: xml.Name{Local: "t"}}
		if e.Positions {
			pos := n.Token.Start()
			start.Attr = []xml.Attr{
				{Name: xml.Name{Local: "line"}, Value: strconv.Itoa(pos.Line)},
				{Name: xml.Name{Local: "column"}, Value: strconv.Itoa(pos.Column)},
			}
		}
		return enc.EncodeElement(n.Token.Text(), start)
	}

	start := xml.StartElement{Name: xml.Name{Local: n.Kind}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := e.encode(enc, child); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
