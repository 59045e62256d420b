package stream

import (
	"fmt"
	"strings"

	"github.com/dhamidi/kobol/data"
)

// Frame is one active rule invocation.
type Frame struct {
	Rule  string
	At    int
	Value *data.Token
}

// Stack tracks the rules currently being tried against a stream.
type Stack struct {
	frames []Frame
	result *data.Token
}

func (s *Stack) Push(rule string, at int) {
	s.frames = append(s.frames, Frame{Rule: rule, At: at})
}

// Pop removes the innermost frame and returns it.
func (s *Stack) Pop() Frame {
	n := len(s.frames)
	if n == 0 {
		panic("stream: pop of empty parse stack")
	}
	f := s.frames[n-1]
	s.frames = s.frames[:n-1]
	return f
}

func (s *Stack) Top() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *Stack) Len() int {
	return len(s.frames)
}

// Contains reports whether rule is already active at token position at,
// which means trying it again would recurse without consuming input.
func (s *Stack) Contains(rule string, at int) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if f.At != at {
			return false
		}
		if f.Rule == rule {
			return true
		}
	}
	return false
}

// Return records tok as the value of the innermost rule, or as the overall
// result when no rule is active.
func (s *Stack) Return(tok *data.Token) {
	if len(s.frames) == 0 {
		s.result = tok
		return
	}
	s.frames[len(s.frames)-1].Value = tok
}

// Result is the last value returned outside of any rule.
func (s *Stack) Result() *data.Token {
	return s.result
}

func (s *Stack) String() string {
	names := make([]string, len(s.frames))
	for i, f := range s.frames {
		names[i] = fmt.Sprintf("%s@%d", f.Rule, f.At)
	}
	return strings.Join(names, " > ")
}
