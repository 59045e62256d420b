// Package parse provides backtracking parser combinators over a
// stream.Stream.
//
// A Parser either accepts what is ahead in the stream, consuming it, or
// rejects it. Every combinator here, and every named rule built with Base,
// leaves the stream exactly where it found it when it rejects, so callers
// never have to clean up after a failed alternative.
package parse

import (
	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/stream"
)

type Parser interface {
	Accepts(s *stream.Stream) bool
}

// Func adapts a function to the Parser interface.
type Func func(s *stream.Stream) bool

func (f Func) Accepts(s *stream.Stream) bool {
	return f(s)
}

// attempt runs p inside a bookmark which is committed when p accepts and
// rewound otherwise.
func attempt(p Parser, s *stream.Stream) bool {
	s.Bookmark()
	if p.Accepts(s) {
		s.Commit()
		return true
	}
	s.Rewind()
	return false
}

// Sequence accepts when all parsers accept one after the other.
func Sequence(parsers ...Parser) Parser {
	return Func(func(s *stream.Stream) bool {
		s.Bookmark()
		for _, p := range parsers {
			if !p.Accepts(s) {
				s.Rewind()
				return false
			}
		}
		s.Commit()
		return true
	})
}

// Choice accepts with the first parser which does. Later alternatives see
// the stream as it was before the earlier ones were tried.
func Choice(parsers ...Parser) Parser {
	return Func(func(s *stream.Stream) bool {
		for _, p := range parsers {
			if attempt(p, s) {
				return true
			}
		}
		return false
	})
}

// Optional always accepts, consuming whatever p accepts.
func Optional(p Parser) Parser {
	return Func(func(s *stream.Stream) bool {
		attempt(p, s)
		return true
	})
}

// Star accepts p zero or more times. It stops as soon as an iteration
// accepts without consuming a token.
func Star(p Parser) Parser {
	return Func(func(s *stream.Stream) bool {
		for {
			before := s.Position()
			if !attempt(p, s) || s.Position() == before {
				return true
			}
		}
	})
}

// Plus accepts p one or more times.
func Plus(p Parser) Parser {
	return Sequence(p, Star(p))
}

// Not accepts, without consuming anything, when p rejects.
func Not(p Parser) Parser {
	return Func(func(s *stream.Stream) bool {
		s.Bookmark()
		ok := p.Accepts(s)
		s.Rewind()
		return !ok
	})
}

// Ahead accepts, without consuming anything, when p accepts.
func Ahead(p Parser) Parser {
	return Func(func(s *stream.Stream) bool {
		s.Bookmark()
		ok := p.Accepts(s)
		s.Rewind()
		return ok
	})
}

// Any accepts a single token for which match returns true.
func Any(match func(tok *data.Token) bool) Parser {
	return Func(func(s *stream.Stream) bool {
		tok := s.Forward()
		if tok == nil {
			return false
		}
		if !match(tok) {
			s.RewindToken(tok)
			return false
		}
		return true
	})
}

// End accepts at the end of input.
func End() Parser {
	return Func(func(s *stream.Stream) bool {
		return s.Peek() == nil
	})
}
