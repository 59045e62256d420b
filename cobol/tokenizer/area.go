// Package tokenizer turns COBOL source text into tokens.
//
// Tokenizing happens in two stages. ProgramArea splits the input into
// column areas and line ends. CharacterStrings then splits program text
// into separators, words, literals and comments using an EBNF lexicon.
package tokenizer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/source"
)

const (
	indicatorColumn      = 7
	programTextColumn    = 8
	identificationColumn = 73
)

const eof = -1

// Error reports input the tokenizer cannot deal with. It ends
// tokenization.
type Error struct {
	Pos  data.Position
	Char rune
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Pos, e.Msg, e.Char)
}

// ProgramArea splits source text into area tokens. In Fixed format every
// run of characters within one column area becomes a token tagged with
// that area; in Free format every line becomes an untagged token. Line
// ends become EndOfLine tokens of their own.
type ProgramArea struct {
	r      *bufio.Reader
	format Format
	err    error

	offset int
	line   int
	column int

	start data.Position
	buf   strings.Builder
}

func NewProgramArea(r io.Reader, format Format) *ProgramArea {
	return &ProgramArea{
		r:      bufio.NewReader(r),
		format: format,
		offset: 1,
		line:   1,
		column: 1,
	}
}

// Source runs the tokenizer on its own goroutine and returns the queue its
// tokens arrive on.
func (p *ProgramArea) Source(size int) *source.Queue {
	return source.Go(size, p.Tokenize)
}

// Tokenize reads the whole input, handing every token to emit. It stops
// early when emit returns false.
func (p *ProgramArea) Tokenize(emit source.Emit) error {
	for {
		c := p.peek()
		if c == eof {
			return p.err
		}

		var tok *data.Token
		switch {
		case c == '\n':
			p.consume()
			tok = p.produce(data.EndOfLine)
			p.newline()

		case c == '\r':
			p.consume()
			if p.peek() == '\n' {
				p.consume()
			}
			tok = p.produce(data.EndOfLine)
			p.newline()

		case p.format == Free:
			p.consumeUntil(0)
			tok = p.produce()

		case p.column < indicatorColumn:
			p.consumeUntil(indicatorColumn)
			tok = p.produce(data.SequenceNumberArea)

		case p.column == indicatorColumn:
			p.consume()
			tok = p.produce(data.IndicatorArea)

		case p.column < identificationColumn:
			p.consumeUntil(identificationColumn)
			tok = p.produce(data.ProgramTextArea)

		default:
			p.consumeUntil(0)
			tok = p.produce(data.IdentificationArea)
		}

		if p.err != nil {
			return p.err
		}
		if tok != nil && !emit(tok) {
			return nil
		}
	}
}

// consumeUntil consumes up to the end of the line or, when column is not
// zero, up to that column.
func (p *ProgramArea) consumeUntil(column int) {
	for column == 0 || p.column < column {
		c := p.peek()
		if c == eof || c == '\r' || c == '\n' {
			return
		}
		p.consume()
	}
}

func (p *ProgramArea) peek() rune {
	if p.err != nil {
		return eof
	}
	c, size, err := p.r.ReadRune()
	if err == io.EOF {
		return eof
	}
	if err != nil {
		p.err = fmt.Errorf("read source: %w", err)
		return eof
	}
	if c == utf8.RuneError && size == 1 {
		p.err = &Error{Pos: p.mark(), Char: c, Msg: "invalid UTF-8 encoding"}
		return eof
	}
	_ = p.r.UnreadRune()
	return c
}

func (p *ProgramArea) consume() {
	c, _, err := p.r.ReadRune()
	if err != nil {
		return
	}
	if p.buf.Len() == 0 {
		p.start = p.mark()
	}
	p.buf.WriteRune(c)
	p.offset++
	p.column++
}

func (p *ProgramArea) produce(tags ...data.Tag) *data.Token {
	if p.buf.Len() == 0 {
		return nil
	}
	end := data.Position{Offset: p.offset - 1, Line: p.line, Column: p.column - 1}
	tok := data.NewToken(p.buf.String(), p.start, end, tags...)
	p.buf.Reset()
	return tok
}

func (p *ProgramArea) newline() {
	p.line++
	p.column = 1
}

func (p *ProgramArea) mark() data.Position {
	return data.Position{Offset: p.offset, Line: p.line, Column: p.column}
}
