// Package ebnflex provides lexical scanning based on EBNF grammars.
//
// A grammar's start production lists the token kinds, as alternatives of
// names:
//
//	Token = Word | Number | Blank .
//
// At every position the lexer tries each kind and takes the longest match.
// When two kinds match the same length, the one listed first wins. Input no
// kind matches produces single-character ERROR tokens.
//
// Matching is greedy: repetitions and options take as much as they can and
// are not revisited when what follows them fails.
package ebnflex

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/ebnf"
)

// ErrorKind is the kind of tokens no production matched.
const ErrorKind = "ERROR"

// Position represents a location in the input. Offsets and columns count
// characters, not bytes.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Grammar is a verified EBNF grammar together with the token kinds named by
// its start production.
type Grammar struct {
	productions ebnf.Grammar
	start       string
	kinds       []string
}

// ParseGrammar reads and verifies a grammar whose start production is
// start.
func ParseGrammar(filename string, r io.Reader, start string) (*Grammar, error) {
	productions, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(productions, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	var kinds []string
	switch e := productions[start].Expr.(type) {
	case *ebnf.Name:
		kinds = []string{e.String}
	case ebnf.Alternative:
		for _, alt := range e {
			name, ok := alt.(*ebnf.Name)
			if !ok {
				return nil, fmt.Errorf("start production %s: alternatives must be production names", start)
			}
			kinds = append(kinds, name.String)
		}
	default:
		return nil, fmt.Errorf("start production %s: must list token kinds", start)
	}

	return &Grammar{productions: productions, start: start, kinds: kinds}, nil
}

// LoadGrammar loads a grammar from a file.
func LoadGrammar(filename, start string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()
	return ParseGrammar(filename, f, start)
}

func (g *Grammar) Start() string {
	return g.start
}

// Kinds returns the token kinds in order of preference.
func (g *Grammar) Kinds() []string {
	return append([]string(nil), g.kinds...)
}

type memoKey struct {
	name   string
	offset int
}

type match struct {
	n  int
	ok bool
}

// Lexer tokenizes input based on a Grammar.
type Lexer struct {
	grammar  *Grammar
	input    []rune
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]match
	visiting map[memoKey]bool
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(grammar *Grammar, input string, filename string) *Lexer {
	return &Lexer{
		grammar:  grammar,
		input:    []rune(input),
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]match),
		visiting: make(map[memoKey]bool),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token from the input, or io.EOF once the input
// is exhausted.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	// Results are only reused within one token.
	clear(l.memo)

	var bestKind string
	var bestLen int
	for _, kind := range l.grammar.kinds {
		clear(l.visiting)
		n, ok := l.tryMatchName(kind, startOffset)
		if ok && n > bestLen {
			bestLen = n
			bestKind = kind
		}
	}

	if bestLen == 0 {
		ch := l.advance()
		return Token{
			Kind:     ErrorKind,
			Literal:  string(ch),
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// tryMatch attempts to match an expression at the given offset. It returns
// the number of characters matched and whether the expression matched at
// all, which it may do without consuming anything.
func (l *Lexer) tryMatch(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case nil:
		return 0, true

	case *ebnf.Token:
		return l.tryMatchToken(e.String, offset)

	case *ebnf.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := l.tryMatch(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best, matched := 0, false
		for _, alt := range e {
			n, ok := l.tryMatch(alt, offset)
			if ok && (!matched || n > best) {
				best, matched = n, true
			}
		}
		return best, matched

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := l.tryMatch(e.Body, offset+total)
			if !ok || n == 0 {
				break
			}
			total += n
		}
		return total, true

	case *ebnf.Option:
		n, ok := l.tryMatch(e.Body, offset)
		if !ok {
			return 0, true
		}
		return n, true

	case *ebnf.Group:
		return l.tryMatch(e.Body, offset)

	case *ebnf.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return 0, false
	}
}

// tryMatchName matches a named production with memoization and cycle
// detection.
func (l *Lexer) tryMatchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}
	if m, ok := l.memo[key]; ok {
		return m.n, m.ok
	}

	// Left recursion: already trying this production here.
	if l.visiting[key] {
		return 0, false
	}

	prod, ok := l.grammar.productions[name]
	if !ok {
		l.memo[key] = match{}
		return 0, false
	}

	l.visiting[key] = true
	n, matched := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = match{n: n, ok: matched}
	return n, matched
}

// tryMatchToken matches a literal string. The ebnf package has already
// removed the quotes.
func (l *Lexer) tryMatchToken(token string, offset int) (int, bool) {
	n := 0
	for _, want := range token {
		if offset+n >= len(l.input) || l.input[offset+n] != want {
			return 0, false
		}
		n++
	}
	return n, true
}

// tryMatchRange matches a character range (e.g., "a" … "z").
func (l *Lexer) tryMatchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(l.input) {
		return 0, false
	}
	lo, hi := []rune(begin), []rune(end)
	if len(lo) != 1 || len(hi) != 1 {
		return 0, false
	}
	ch := l.input[offset]
	if ch >= lo[0] && ch <= hi[0] {
		return 1, true
	}
	return 0, false
}

// Tokenize reads all tokens from input. The last token is the EOF token.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
