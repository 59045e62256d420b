// Package cobol parses COBOL source files.
//
// Parse runs the whole pipeline: the column tokenizer on its own
// goroutine, the lexeme splitter, and the grammar, building a tree from
// what the grammar accepts.
package cobol

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/kobol/cobol/config"
	"github.com/dhamidi/kobol/cobol/grammar"
	"github.com/dhamidi/kobol/cobol/tokenizer"
	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/ebnflex"
	"github.com/dhamidi/kobol/source"
	"github.com/dhamidi/kobol/stream"
	"github.com/dhamidi/kobol/tree"
)

var log = commonlog.GetLogger("kobol")

// ParseError reports why a source could not be parsed.
type ParseError struct {
	File     string
	Position data.Position
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	msg := fmt.Sprintf("%s:%s: %s", file, e.Position, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type options struct {
	file          string
	format        tokenizer.Format
	maxWordLength int
	queueSize     int
	lexicon       *ebnflex.Grammar
	lexiconPath   string
}

type Option func(*options)

// WithFile names the source in errors.
func WithFile(name string) Option {
	return func(o *options) { o.file = name }
}

func WithFormat(f tokenizer.Format) Option {
	return func(o *options) { o.format = f }
}

func WithMaxWordLength(n int) Option {
	return func(o *options) { o.maxWordLength = n }
}

// WithQueueSize sets how many tokens the tokenizer may run ahead of the
// parser.
func WithQueueSize(n int) Option {
	return func(o *options) { o.queueSize = n }
}

// WithLexicon replaces the built-in lexicon.
func WithLexicon(g *ebnflex.Grammar) Option {
	return func(o *options) { o.lexicon = g }
}

// WithSettings applies loaded settings. Options after it override them.
func WithSettings(s config.Settings) Option {
	return func(o *options) {
		o.format = s.Format
		o.maxWordLength = s.MaxWordLength
		o.queueSize = s.QueueSize
		o.lexiconPath = s.Lexicon
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		format:        tokenizer.Fixed,
		maxWordLength: grammar.DefaultMaxWordLength,
		queueSize:     config.DefaultQueueSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.lexicon == nil && o.lexiconPath != "" {
		g, err := loadLexicon(o.lexiconPath)
		if err != nil {
			return nil, err
		}
		o.lexicon = g
	}
	if o.lexicon == nil {
		g, err := tokenizer.DefaultLexicon()
		if err != nil {
			return nil, fmt.Errorf("built-in lexicon: %w", err)
		}
		o.lexicon = g
	}
	return o, nil
}

var lexicons sync.Map // path -> *ebnflex.Grammar

func loadLexicon(path string) (*ebnflex.Grammar, error) {
	if g, ok := lexicons.Load(path); ok {
		return g.(*ebnflex.Grammar), nil
	}
	g, err := tokenizer.LoadLexicon(path)
	if err != nil {
		return nil, err
	}
	lexicons.Store(path, g)
	return g, nil
}

var grammars sync.Map // max word length -> *grammar.Grammar

// Grammar returns the grammar for the given maximum word length. Grammars
// are built once and shared.
func Grammar(maxWordLength int) *grammar.Grammar {
	if maxWordLength <= 0 {
		maxWordLength = grammar.DefaultMaxWordLength
	}
	if g, ok := grammars.Load(maxWordLength); ok {
		return g.(*grammar.Grammar)
	}
	g, _ := grammars.LoadOrStore(maxWordLength, grammar.New(grammar.WithMaxWordLength(maxWordLength)))
	return g.(*grammar.Grammar)
}

func (o *options) characterStrings(r io.Reader) (*tokenizer.CharacterStrings, *source.Queue) {
	q := tokenizer.NewProgramArea(r, o.format).Source(o.queueSize)
	return tokenizer.NewCharacterStrings(q, o.lexicon), q
}

func (o *options) lexicalError(err error) *ParseError {
	pe := &ParseError{File: o.file, Reason: "lexical error", Err: err}
	var tokErr *tokenizer.Error
	if errors.As(err, &tokErr) {
		pe.Position = tokErr.Pos
	}
	return pe
}

// Tokenize splits the source read from r into tokens. On a lexical error it
// returns the tokens read so far along with the error.
func Tokenize(r io.Reader, opts ...Option) ([]*data.Token, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	src, q := o.characterStrings(r)
	defer q.Close()

	toks, err := source.Drain(src)
	if err != nil {
		return toks, o.lexicalError(err)
	}
	return toks, nil
}

// Parse parses the source read from r and returns the document node of
// its syntax tree.
func Parse(r io.Reader, opts ...Option) (*tree.Node, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	src, q := o.characterStrings(r)
	defer q.Close()

	builder := tree.NewBuilder()
	s := stream.New(src, builder)
	ok := Grammar(o.maxWordLength).SourceText().Accepts(s)

	// The source only ends early on errors, so they take precedence.
	if err := s.Err(); err != nil {
		return nil, o.lexicalError(err)
	}
	if !ok {
		pe := &ParseError{File: o.file, Reason: "unexpected end of input"}
		if tok := s.Farthest(); tok != nil {
			pe.Position = tok.Start()
			pe.Reason = fmt.Sprintf("unexpected %q", tok.Text())
		}
		log.Debugf("%s", pe)
		return nil, pe
	}

	s.Commit()
	if err := builder.Err(); err != nil {
		return nil, &ParseError{File: o.file, Reason: "malformed tree", Err: err}
	}
	return builder.Root(), nil
}
