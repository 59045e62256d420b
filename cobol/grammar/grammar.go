// Package grammar recognises the lexical elements of COBOL: words,
// literals, keywords and separators.
//
// Rules work on the tokens produced by the tokenizer package. They skip
// separators and anything which is not program text before looking at a
// token, return the token they recognised as their value, and leave the
// stream untouched when they reject.
package grammar

import (
	"strings"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/parse"
	"github.com/dhamidi/kobol/stream"
)

// Namespace is the default namespace of the markers rules insert.
const Namespace = "cobol"

// DefaultMaxWordLength is the longest COBOL word the standard allows.
const DefaultMaxWordLength = 31

type Option func(*Grammar)

// WithMaxWordLength sets the longest accepted COBOL word. Values of zero
// or less select DefaultMaxWordLength.
func WithMaxWordLength(n int) Option {
	return func(g *Grammar) {
		if n <= 0 {
			n = DefaultMaxWordLength
		}
		g.maxWordLength = n
	}
}

// WithNamespace sets the namespace of the markers rules insert.
func WithNamespace(namespace string) Option {
	return func(g *Grammar) {
		g.namespace = namespace
	}
}

// Grammar holds the rules. All of them are built by New; a Grammar may be
// shared by concurrent parses.
type Grammar struct {
	*parse.Base
	namespace     string
	maxWordLength int
}

func New(opts ...Option) *Grammar {
	g := &Grammar{
		namespace:     Namespace,
		maxWordLength: DefaultMaxWordLength,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Base = parse.NewBase(g.namespace)
	g.Base.IsSeparator = IsSeparator
	g.Base.IsProgramText = IsProgramText

	g.SourceText()
	return g
}

func (g *Grammar) MaxWordLength() int {
	return g.maxWordLength
}

// IsSeparator reports separator tokens: a comma, a semicolon or blanks.
func IsSeparator(tok *data.Token) bool {
	if !tok.HasTag(data.Separator) {
		return false
	}
	text := tok.Text()
	return text == "," || text == ";" || strings.TrimSpace(text) == ""
}

// IsProgramText reports tokens from the program text area which are not
// comments.
func IsProgramText(tok *data.Token) bool {
	return tok.HasTag(data.ProgramTextArea) && !tok.HasTag(data.Comment)
}

// token builds a rule accepting the next program text token when match
// does.
func (g *Grammar) token(name string, match func(tok *data.Token) bool) parse.Parser {
	return g.Rule(name, func() parse.Parser {
		return parse.Func(func(s *stream.Stream) bool {
			g.SkipSeparators(s)
			tok := s.Forward()
			if tok == nil || !match(tok) {
				return false
			}
			s.Stack().Return(tok)
			return true
		})
	})
}

// ReservedWord accepts a reserved word.
func (g *Grammar) ReservedWord() parse.Parser {
	return g.token("reservedWord", func(tok *data.Token) bool {
		return tok.HasTag(data.CharacterString) && IsReserved(tok.Text())
	})
}

// Punctuation accepts the separators which carry meaning: periods,
// parentheses and colons.
func (g *Grammar) Punctuation() parse.Parser {
	return g.token("punctuation", func(tok *data.Token) bool {
		return tok.HasTag(data.Separator) && !IsSeparator(tok)
	})
}

// CharacterString accepts any character string, including those which
// are not valid words, like operators.
func (g *Grammar) CharacterString() parse.Parser {
	return g.token("characterString", func(tok *data.Token) bool {
		return tok.HasTag(data.CharacterString)
	})
}

// SourceText accepts a whole compilation unit as a series of words,
// literals, reserved words, punctuation and other character strings,
// followed by the end of input.
func (g *Grammar) SourceText() parse.Parser {
	return g.Rule("sourceText", func() parse.Parser {
		element := parse.Choice(
			g.Literal(),
			g.ReservedWord(),
			g.CobolWord(),
			g.Punctuation(),
			g.CharacterString(),
		)
		trailing := parse.Func(func(s *stream.Stream) bool {
			g.SkipSeparators(s)
			return true
		})
		return parse.Sequence(parse.Star(element), trailing, parse.End())
	})
}
