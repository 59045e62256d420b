// Package source defines producers of tokens for a parse stream.
package source

import "github.com/dhamidi/kobol/data"

// Source produces tokens one at a time. Tokens which were read but not
// used can be handed back with Unread; they are returned again, most
// recently unread first, before anything new is produced.
type Source interface {
	// Next returns the next token, or nil at the end of input.
	Next() *data.Token

	// Unread pushes tok back onto the front of the source.
	Unread(tok *data.Token)

	// Err reports the error which ended the input early, if any. It is
	// only meaningful once Next has returned nil.
	Err() error
}

// Buffer is a stack of pushed back tokens.
type Buffer struct {
	tokens []*data.Token
}

func (b *Buffer) Push(tok *data.Token) {
	b.tokens = append(b.tokens, tok)
}

// Pop removes the most recently pushed token.
func (b *Buffer) Pop() (*data.Token, bool) {
	n := len(b.tokens)
	if n == 0 {
		return nil, false
	}
	tok := b.tokens[n-1]
	b.tokens[n-1] = nil
	b.tokens = b.tokens[:n-1]
	return tok, true
}

func (b *Buffer) Len() int {
	return len(b.tokens)
}

// Slice is a Source over tokens held in memory.
type Slice struct {
	tokens []*data.Token
	pos    int
	pushed Buffer
}

func NewSlice(tokens ...*data.Token) *Slice {
	return &Slice{tokens: tokens}
}

func (s *Slice) Next() *data.Token {
	if tok, ok := s.pushed.Pop(); ok {
		return tok
	}
	if s.pos >= len(s.tokens) {
		return nil
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok
}

func (s *Slice) Unread(tok *data.Token) {
	s.pushed.Push(tok)
}

func (s *Slice) Err() error {
	return nil
}

// Drain reads src until it is exhausted.
func Drain(src Source) ([]*data.Token, error) {
	var tokens []*data.Token
	for tok := src.Next(); tok != nil; tok = src.Next() {
		tokens = append(tokens, tok)
	}
	return tokens, src.Err()
}
