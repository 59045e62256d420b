package grammar

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/parse"
)

var log = commonlog.GetLogger("kobol.grammar")

// literal builds a rule accepting a character string of the given literal
// kind. The kind was decided by the tokenizer.
func (g *Grammar) literal(name string, kind data.Tag) parse.Parser {
	return g.token(name, func(tok *data.Token) bool {
		return tok.HasTag(data.CharacterString) && tok.HasTag(kind)
	})
}

func (g *Grammar) IntegerLiteral() parse.Parser {
	return g.literal("integerLiteral", data.IntegerLiteral)
}

func (g *Grammar) DecimalLiteral() parse.Parser {
	return g.literal("decimalLiteral", data.DecimalLiteral)
}

func (g *Grammar) BooleanLiteral() parse.Parser {
	return g.literal("booleanLiteral", data.BooleanLiteral)
}

func (g *Grammar) Hexadecimal() parse.Parser {
	return g.literal("hexadecimal", data.HexadecimalLiteral)
}

func (g *Grammar) AlphanumericLiteral() parse.Parser {
	return g.literal("alphanumericLiteral", data.StringLiteral)
}

func (g *Grammar) PseudoLiteral() parse.Parser {
	return g.literal("pseudoLiteral", data.PseudoLiteral)
}

// Literal accepts a literal of any kind.
func (g *Grammar) Literal() parse.Parser {
	return g.Rule("literal", func() parse.Parser {
		return parse.Choice(
			g.IntegerLiteral(),
			g.DecimalLiteral(),
			g.BooleanLiteral(),
			g.Hexadecimal(),
			g.AlphanumericLiteral(),
			g.PseudoLiteral(),
		)
	})
}
