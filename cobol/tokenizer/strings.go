package tokenizer

import (
	"io"
	"unicode/utf8"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/ebnflex"
	"github.com/dhamidi/kobol/source"
)

// CharacterStrings is a Source which splits the program text coming from
// another Source into lexemes. Other tokens pass through unchanged.
//
// In fixed format a line whose indicator is '*' or '/' is a comment line:
// its program text is passed on whole, tagged as a Comment. Free format
// line text is tagged as program text when it is split.
type CharacterStrings struct {
	src     source.Source
	lexicon *ebnflex.Grammar
	pending []*data.Token
	pushed  source.Buffer
	comment bool
}

func NewCharacterStrings(src source.Source, lexicon *ebnflex.Grammar) *CharacterStrings {
	return &CharacterStrings{src: src, lexicon: lexicon}
}

func (c *CharacterStrings) Next() *data.Token {
	if tok, ok := c.pushed.Pop(); ok {
		return tok
	}
	for len(c.pending) == 0 {
		tok := c.src.Next()
		if tok == nil {
			return nil
		}
		switch {
		case tok.HasTag(data.IndicatorArea):
			text := tok.Text()
			c.comment = text == "*" || text == "/"
			return tok
		case tok.HasTag(data.EndOfLine):
			c.comment = false
			return tok
		case tok.HasTag(data.ProgramTextArea):
			if c.comment {
				return tok.WithTags(data.Comment)
			}
			c.pending = c.split(tok)
		case tok.TagCount() == 0:
			c.pending = c.split(tok.WithTags(data.ProgramTextArea))
		default:
			return tok
		}
	}
	tok := c.pending[0]
	c.pending[0] = nil
	c.pending = c.pending[1:]
	return tok
}

func (c *CharacterStrings) Unread(tok *data.Token) {
	c.pushed.Push(tok)
}

func (c *CharacterStrings) Err() error {
	return c.src.Err()
}

// split breaks up a program text token. Lexemes keep the tags of the
// original and add those of their kind.
func (c *CharacterStrings) split(tok *data.Token) []*data.Token {
	area := tok.Tags().Slice()
	start := tok.Start()
	lx := ebnflex.NewLexer(c.lexicon, tok.Text(), "")

	var out []*data.Token
	for {
		lexeme, err := lx.NextToken()
		if err == io.EOF {
			break
		}
		from := start.OffsetBy(lexeme.Position.Offset)
		to := from.OffsetBy(utf8.RuneCountInString(lexeme.Literal) - 1)
		tags := append(append([]data.Tag(nil), area...), kindTags[lexeme.Kind]...)
		out = append(out, data.NewToken(lexeme.Literal, from, to, tags...))
	}
	return out
}
