package tokenizer

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/ebnflex"
)

// LexiconStart is the production a lexicon lists its lexeme kinds in.
const LexiconStart = "Lexeme"

//go:embed lexicon.ebnf
var lexiconSource string

// DefaultLexicon returns the built-in lexicon. It is parsed on first use.
var DefaultLexicon = sync.OnceValues(func() (*ebnflex.Grammar, error) {
	return ebnflex.ParseGrammar("lexicon.ebnf", strings.NewReader(lexiconSource), LexiconStart)
})

// LexiconSource returns the text of the built-in lexicon.
func LexiconSource() string {
	return lexiconSource
}

// LoadLexicon reads a lexicon from a file. Its lexeme kinds should use the
// names of the built-in lexicon; kinds it does not know get no syntactic
// tags.
func LoadLexicon(filename string) (*ebnflex.Grammar, error) {
	return ebnflex.LoadGrammar(filename, LexiconStart)
}

// kindTags are the tags each lexeme kind adds to the area tag of its
// token.
var kindTags = map[string][]data.Tag{
	"Separator":   {data.Separator},
	"Punctuation": {data.Separator},
	"Comment":     {data.Comment},
	"Word":        {data.CharacterString},
	"Operator":    {data.CharacterString},
	"Integer":     {data.CharacterString, data.IntegerLiteral},
	"Decimal":     {data.CharacterString, data.DecimalLiteral},
	"Boolean":     {data.CharacterString, data.BooleanLiteral},
	"Hexadecimal": {data.CharacterString, data.HexadecimalLiteral},
	"String":      {data.CharacterString, data.StringLiteral},
	"Pseudo":      {data.CharacterString, data.PseudoLiteral},
}

// KindTags returns the tags given to lexemes of the named kind.
func KindTags(kind string) []data.Tag {
	return append([]data.Tag(nil), kindTags[kind]...)
}
