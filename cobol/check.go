package cobol

import (
	"errors"

	"github.com/dhamidi/kobol/cobol/grammar"
	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/tree"
)

// Warning is a problem in a source which still parsed.
type Warning struct {
	Token *data.Token
	Err   error
}

func (w Warning) Error() string {
	return w.Token.Start().String() + ": " + w.Err.Error()
}

// Check looks for words in a parsed tree which only failed to be
// user-defined words because they are too long.
func Check(root *tree.Node, maxWordLength int) []Warning {
	g := Grammar(maxWordLength)
	var warnings []Warning
	root.Walk(func(n *tree.Node) bool {
		if n.Kind != "characterString" {
			return true
		}
		for _, tok := range n.Tokens() {
			if !grammar.IsProgramText(tok) || grammar.IsSeparator(tok) {
				continue
			}
			if err := g.CheckWord(tok.Text()); errors.Is(err, grammar.ErrWordTooLong) {
				warnings = append(warnings, Warning{Token: tok, Err: err})
			}
		}
		return false
	})
	return warnings
}
