// Package stream implements the transactional view of a token source which
// grammar rules parse against.
//
// A Stream holds on to every token it takes from its Source, and every
// marker a rule inserts, until that part of the parse is committed. Rules
// may bookmark the current position, try something, and then either commit
// (keep what they consumed) or rewind (hand the tokens back to the Source and
// drop the markers). Bookmarks nest, so speculative parses can go arbitrarily
// deep while the tokens are only ever pulled from the Source once.
//
// When no bookmark is active, Commit is a hard commit: everything held since
// the previous hard commit is forwarded to the Target and the Stream holds
// nothing anymore.
//
// A Stream is used by a single parse on a single goroutine.
package stream

import (
	"fmt"
	"strings"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/source"
)

type checkpoint struct {
	data []data.Data
}

type Stream struct {
	source   source.Source
	target   Target
	frames   []*checkpoint
	stack    Stack
	position int

	farthest   *data.Token
	farthestAt int
}

// New creates a stream reading from src. Committed data goes to target,
// which may be nil to discard it.
func New(src source.Source, target Target) *Stream {
	return &Stream{
		source: src,
		target: target,
		frames: []*checkpoint{{}},
	}
}

func (s *Stream) top() *checkpoint {
	return s.frames[len(s.frames)-1]
}

// Forward returns the next token, or nil at the end of input.
func (s *Stream) Forward() *data.Token {
	tok := s.source.Next()
	if tok == nil {
		return nil
	}
	top := s.top()
	top.data = append(top.data, tok)
	s.position++
	if s.position > s.farthestAt {
		s.farthestAt = s.position
		s.farthest = tok
	}
	return tok
}

// Insert adds a marker at the current position. It is dropped again if the
// data around it gets rewound.
func (s *Stream) Insert(m *data.Marker) {
	top := s.top()
	top.data = append(top.data, m)
}

// RewindToken undoes the Forward which returned tok. Tokens must be rewound
// in reverse order of forwarding; anything else is a programming error and
// panics.
func (s *Stream) RewindToken(tok *data.Token) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		for j := len(f.data) - 1; j >= 0; j-- {
			held, ok := f.data[j].(*data.Token)
			if !ok {
				continue
			}
			if held != tok {
				panic(fmt.Sprintf("stream: rewinding %v out of order, last forwarded was %v", tok, held))
			}
			f.data = append(f.data[:j], f.data[j+1:]...)
			s.position--
			s.source.Unread(tok)
			return
		}
	}
	panic(fmt.Sprintf("stream: rewinding %v which is not held", tok))
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() *data.Token {
	tok := s.Forward()
	if tok != nil {
		s.RewindToken(tok)
	}
	return tok
}

// PeekText returns the text of up to n upcoming tokens, for tracing.
func (s *Stream) PeekText(n int) string {
	var seen []*data.Token
	for i := 0; i < n; i++ {
		tok := s.Forward()
		if tok == nil {
			break
		}
		seen = append(seen, tok)
	}
	var sb strings.Builder
	for _, tok := range seen {
		sb.WriteString(tok.Text())
	}
	for i := len(seen) - 1; i >= 0; i-- {
		s.RewindToken(seen[i])
	}
	return sb.String()
}

// Bookmark starts a new checkpoint. Everything produced from here on is
// tentative until the matching Commit or Rewind.
func (s *Stream) Bookmark() {
	s.frames = append(s.frames, &checkpoint{})
}

// Rewind discards everything since the latest bookmark, removing that
// bookmark, or everything since the last hard commit when there is no
// bookmark. Discarded tokens go back to the Source; markers are dropped.
func (s *Stream) Rewind() {
	top := s.top()
	if len(s.frames) > 1 {
		s.frames[len(s.frames)-1] = nil
		s.frames = s.frames[:len(s.frames)-1]
	}
	discarded := top.data
	top.data = nil
	for i := len(discarded) - 1; i >= 0; i-- {
		if tok, ok := discarded[i].(*data.Token); ok {
			s.position--
			s.source.Unread(tok)
		}
	}
}

// Commit removes the latest bookmark, keeping what was produced since as
// part of the enclosing checkpoint. Without a bookmark, all held data is
// pushed to the Target.
func (s *Stream) Commit() {
	if len(s.frames) > 1 {
		top := s.top()
		s.frames[len(s.frames)-1] = nil
		s.frames = s.frames[:len(s.frames)-1]
		parent := s.top()
		parent.data = append(parent.data, top.data...)
		return
	}
	base := s.frames[0]
	held := base.data
	base.data = nil
	if s.target == nil {
		return
	}
	for _, d := range held {
		s.target.Push(d)
	}
}

// Stack returns the rules currently being tried.
func (s *Stream) Stack() *Stack {
	return &s.stack
}

// Position is the number of tokens consumed so far and not rewound.
func (s *Stream) Position() int {
	return s.position
}

// Farthest returns the token furthest into the input which was ever
// forwarded, rewound or not. After a failed parse it is where parsing got
// stuck.
func (s *Stream) Farthest() *data.Token {
	return s.farthest
}

// Depth is the number of active bookmarks.
func (s *Stream) Depth() int {
	return len(s.frames) - 1
}

// Pending is the number of tokens and markers held since the last hard
// commit.
func (s *Stream) Pending() int {
	n := 0
	for _, f := range s.frames {
		n += len(f.data)
	}
	return n
}

// Err reports a fatal error from the underlying Source.
func (s *Stream) Err() error {
	return s.source.Err()
}
