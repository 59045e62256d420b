// Package lsp serves COBOL diagnostics and hover information over the
// Language Server Protocol.
package lsp

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/kobol/cobol"
	"github.com/dhamidi/kobol/cobol/config"
	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/tree"
)

const lsName = "kobol"

var log = commonlog.GetLogger("kobol.lsp")

type document struct {
	uri     string
	text    string
	version protocol.Integer
	root    *tree.Node
	tokens  []*data.Token
}

type Server struct {
	handler  protocol.Handler
	server   *server.Server
	version  string
	settings config.Settings

	mu   sync.Mutex
	docs map[string]*document
}

// NewServer creates a language server parsing documents with the given
// settings.
func NewServer(version string, settings config.Settings) *Server {
	ls := &Server{
		version:  version,
		settings: settings,
		docs:     make(map[string]*document),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized, format %s, max word length %d", ls.settings.Format, ls.settings.MaxWordLength)
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := &document{
		uri:     params.TextDocument.URI,
		text:    params.TextDocument.Text,
		version: params.TextDocument.Version,
	}
	ls.update(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole)
	if !ok {
		return nil
	}
	doc := &document{
		uri:     params.TextDocument.URI,
		text:    textChange.Text,
		version: params.TextDocument.Version,
	}
	ls.update(ctx, doc)
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	doc := ls.docs[params.TextDocument.URI]
	ls.mu.Unlock()
	if doc == nil {
		return nil, nil
	}

	text, ok := doc.hover(int(params.Position.Line)+1, int(params.Position.Character)+1)
	if !ok {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: text,
		},
	}, nil
}

// update parses doc, remembers it and publishes its diagnostics.
func (ls *Server) update(ctx *glsp.Context, doc *document) {
	diagnostics := ls.analyze(doc)

	ls.mu.Lock()
	ls.docs[doc.uri] = doc
	ls.mu.Unlock()

	version := protocol.UInteger(doc.version)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         doc.uri,
		Version:     &version,
		Diagnostics: diagnostics,
	})
}

// analyze parses the document text and returns what is wrong with it.
func (ls *Server) analyze(doc *document) []protocol.Diagnostic {
	name := doc.uri
	if path, err := uriToPath(doc.uri); err == nil {
		name = filepath.Base(path)
	}
	opts := []cobol.Option{cobol.WithSettings(ls.settings), cobol.WithFile(name)}

	diagnostics := []protocol.Diagnostic{}
	root, err := cobol.Parse(strings.NewReader(doc.text), opts...)
	if err != nil {
		doc.tokens, _ = cobol.Tokenize(strings.NewReader(doc.text), opts...)
		var pe *cobol.ParseError
		if !errors.As(err, &pe) {
			log.Errorf("%s: %s", doc.uri, err)
			return diagnostics
		}
		msg := pe.Reason
		if pe.Err != nil {
			msg += ": " + pe.Err.Error()
		}
		diagnostics = append(diagnostics, diagnostic(pe.Position, pe.Position, protocol.DiagnosticSeverityError, msg))
		return diagnostics
	}
	doc.root = root
	doc.tokens = root.Tokens()

	for _, w := range cobol.Check(root, ls.settings.MaxWordLength) {
		diagnostics = append(diagnostics, diagnostic(w.Token.Start(), w.Token.End(), protocol.DiagnosticSeverityWarning, w.Err.Error()))
	}
	return diagnostics
}

// hover describes the token at the given line and column, both 1-based,
// and the rules it belongs to.
func (doc *document) hover(line, column int) (string, bool) {
	if doc.root != nil {
		path := doc.root.Path(line, column)
		if len(path) == 0 {
			return "", false
		}
		var rules []string
		for _, n := range path {
			if n.Kind != "" {
				rules = append(rules, n.Kind)
			}
		}
		return describe(path[len(path)-1].Token, rules), true
	}
	for _, tok := range doc.tokens {
		if n := tree.NewTerminal(tok); n.Path(line, column) != nil {
			return describe(tok, nil), true
		}
	}
	return "", false
}

func describe(tok *data.Token, rules []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%q at %s\n%s", tok.Text(), tok.Start(), tok.Tags())
	if len(rules) > 0 {
		fmt.Fprintf(&sb, "\n%s", strings.Join(rules, " > "))
	}
	return sb.String()
}

// diagnostic converts an inclusive range of 1-based positions.
func diagnostic(start, end data.Position, severity protocol.DiagnosticSeverity, msg string) protocol.Diagnostic {
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: toProtocol(start),
			End:   toProtocol(end.OffsetBy(1)),
		},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}

func toProtocol(p data.Position) protocol.Position {
	line, col := p.Line-1, p.Column-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
