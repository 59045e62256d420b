package parse

import (
	"fmt"

	"github.com/dhamidi/kobol/stream"
)

// Slot stands in for a parser which is defined later, so that mutually
// recursive rules can refer to each other while they are being built.
type Slot struct {
	name   string
	parser Parser
}

func NewSlot(name string) *Slot {
	return &Slot{name: name}
}

// Define sets the parser the slot delegates to. It may be called once.
func (sl *Slot) Define(p Parser) {
	if sl.parser != nil {
		panic(fmt.Sprintf("parse: slot %q defined twice", sl.name))
	}
	sl.parser = p
}

func (sl *Slot) Name() string {
	return sl.name
}

func (sl *Slot) Accepts(s *stream.Stream) bool {
	if sl.parser == nil {
		panic(fmt.Sprintf("parse: slot %q used before it was defined", sl.name))
	}
	return sl.parser.Accepts(s)
}
