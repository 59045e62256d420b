package grammar

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/parse"
	"github.com/dhamidi/kobol/stream"
)

var (
	ErrEmptyWord        = errors.New("empty word")
	ErrWordTooLong      = errors.New("word too long")
	ErrInvalidCharacter = errors.New("invalid character in word")
	ErrHyphenAtEdge     = errors.New("word starts or ends with a hyphen")
	ErrAllDigits        = errors.New("word has no letter")
	ErrReservedWord     = errors.New("reserved word")
)

// CheckWord reports why text is not a valid user-defined COBOL word, or
// nil when it is.
func (g *Grammar) CheckWord(text string) error {
	n := utf8.RuneCountInString(text)
	switch {
	case n == 0:
		return ErrEmptyWord
	case !isWordPart(text):
		return fmt.Errorf("%w: %q", ErrInvalidCharacter, text)
	case n > g.maxWordLength:
		return fmt.Errorf("%w: %q has %d characters, at most %d are allowed", ErrWordTooLong, text, n, g.maxWordLength)
	case text[0] == '-' || text[len(text)-1] == '-':
		return fmt.Errorf("%w: %q", ErrHyphenAtEdge, text)
	case !hasNonDigit(text):
		return fmt.Errorf("%w: %q", ErrAllDigits, text)
	case IsReserved(text):
		return fmt.Errorf("%w: %q", ErrReservedWord, text)
	}
	return nil
}

// CobolWord accepts a user-defined word. Adjacent character strings are
// joined into one word, which becomes the rule's value.
func (g *Grammar) CobolWord() parse.Parser {
	return g.Rule("cobolWord", func() parse.Parser {
		return parse.Func(g.acceptCobolWord)
	})
}

func (g *Grammar) acceptCobolWord(s *stream.Stream) bool {
	g.SkipSeparators(s)

	var parts []*data.Token
	for {
		tok := s.Forward()
		if tok == nil {
			break
		}
		if !tok.HasTag(data.ProgramTextArea) || !tok.HasTag(data.CharacterString) || !isWordPart(tok.Text()) {
			s.RewindToken(tok)
			break
		}
		parts = append(parts, tok)
	}
	if len(parts) == 0 {
		return false
	}

	word := data.Compose(parts, data.CharacterString, data.ProgramTextArea)
	if err := g.CheckWord(word.Text()); err != nil {
		log.Debugf("not a word at %s: %s", word.Start(), err)
		return false
	}
	s.Stack().Return(word)
	return true
}

func isWordPart(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

func hasNonDigit(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return true
		}
	}
	return false
}
