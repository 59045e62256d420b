package parse

import (
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/stream"
)

var log = commonlog.GetLogger("kobol.parse")

// Base holds what every grammar needs: the namespace its markers live in,
// how to recognise tokens which rules should step over, and the table of
// named rules.
//
// Named rules are built lazily, the first time they are asked for, and
// reused afterwards. Grammars should ask for all their rules when they are
// constructed; after that a Base is only read and may be shared between
// goroutines.
type Base struct {
	Namespace string

	// IsSeparator reports tokens which separate program text and carry no
	// meaning of their own.
	IsSeparator func(tok *data.Token) bool

	// IsProgramText reports tokens which are part of the program proper, as
	// opposed to sequence numbers, comments, line ends and the like.
	IsProgramText func(tok *data.Token) bool

	mu    sync.Mutex
	rules map[string]*Slot
}

func NewBase(namespace string) *Base {
	return &Base{
		Namespace: namespace,
		rules:     make(map[string]*Slot),
	}
}

func (b *Base) skippable(tok *data.Token) bool {
	if b.IsProgramText != nil && !b.IsProgramText(tok) {
		return true
	}
	return b.IsSeparator != nil && b.IsSeparator(tok)
}

// SkipSeparators consumes every separator and every token which is not
// program text up to the next token which is.
func (b *Base) SkipSeparators(s *stream.Stream) {
	for {
		tok := s.Forward()
		if tok == nil {
			return
		}
		if !b.skippable(tok) {
			s.RewindToken(tok)
			return
		}
	}
}

// Keyword accepts the next piece of program text when it spells word,
// ignoring case. The matched token becomes the value of the enclosing rule.
func (b *Base) Keyword(word string) Parser {
	return Func(func(s *stream.Stream) bool {
		s.Bookmark()
		b.SkipSeparators(s)
		tok := s.Forward()
		if tok == nil || !strings.EqualFold(tok.Text(), word) {
			s.Rewind()
			return false
		}
		s.Commit()
		s.Stack().Return(tok)
		return true
	})
}

// Rule returns the named rule, calling build to create its body the first
// time. The rule is registered before build runs, so build may refer to
// the rule itself or to rules which refer back to it.
func (b *Base) Rule(name string, build func() Parser) Parser {
	b.mu.Lock()
	if b.rules == nil {
		b.rules = make(map[string]*Slot)
	}
	if slot, ok := b.rules[name]; ok {
		b.mu.Unlock()
		return slot
	}
	slot := NewSlot(name)
	b.rules[name] = slot
	b.mu.Unlock()

	slot.Define(&rule{base: b, name: name, body: build()})
	return slot
}

// rule brackets whatever its body accepts with Start and End markers, and
// rewinds to where it started when the body rejects.
type rule struct {
	base *Base
	name string
	body Parser
}

func (r *rule) Accepts(s *stream.Stream) bool {
	at := s.Position()
	stack := s.Stack()
	if stack.Contains(r.name, at) {
		log.Debugf("%s: left recursion at %d, rejecting", r.name, at)
		return false
	}

	traced := log.AllowLevel(commonlog.Debug)
	if traced {
		log.Debugf("%s: trying at %d (%s) %q", r.name, at, stack, s.PeekText(5))
	}

	stack.Push(r.name, at)
	s.Bookmark()
	s.Insert(data.Start(r.base.Namespace, r.name))
	ok := r.body.Accepts(s)
	frame := stack.Pop()

	if !ok {
		s.Rewind()
		if traced {
			log.Debugf("%s: rejected at %d", r.name, at)
		}
		return false
	}

	s.Insert(data.End(r.base.Namespace, r.name))
	s.Commit()
	if frame.Value != nil {
		stack.Return(frame.Value)
	}
	if traced {
		log.Debugf("%s: accepted %d..%d", r.name, at, s.Position())
	}
	return true
}
