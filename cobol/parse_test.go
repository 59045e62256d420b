package cobol

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/kobol/cobol/config"
	"github.com/dhamidi/kobol/cobol/grammar"
	"github.com/dhamidi/kobol/cobol/tokenizer"
	"github.com/dhamidi/kobol/data"
	"github.com/dhamidi/kobol/tree"
)

func fixed(text string) string {
	return "000100 " + text + strings.Repeat(" ", 65-len(text)) + "PROG1\n"
}

func TestTokenizeMoveLine(t *testing.T) {
	line := "      " + " " + "MOVE A TO B." + strings.Repeat(" ", 53) + "001000\n"
	toks, err := Tokenize(strings.NewReader(line))
	if err != nil {
		t.Fatal(err)
	}
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text())
	}
	want := []string{"      ", " ", "MOVE", " ", "A", " ", "TO", " ", "B", ".", strings.Repeat(" ", 53), "001000", "\n"}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Errorf("got %q\nwant %q", texts, want)
	}
	if !toks[11].HasTag(data.IdentificationArea) || !toks[12].HasTag(data.EndOfLine) {
		t.Errorf("last tokens = %v, %v", toks[11], toks[12])
	}
}

func kinds(root *tree.Node, kind string) []string {
	var out []string
	root.Walk(func(n *tree.Node) bool {
		if n.Kind == kind {
			out = append(out, strings.TrimSpace(n.Text()))
			return false
		}
		return true
	})
	return out
}

func TestParse(t *testing.T) {
	src := fixed("MOVE WS-TOTAL TO WS-OUT.") +
		"000200*" + strings.Repeat(" ", 65) + "\n" +
		fixed("DISPLAY 'DONE' X\"0A\".")
	root, err := Parse(strings.NewReader(src), WithFile("prog.cbl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(root.Children) != 1 || root.Children[0].Kind != "sourceText" {
		t.Fatalf("unexpected document shape: %d children", len(root.Children))
	}
	if got := kinds(root, "cobolWord"); strings.Join(got, ",") != "WS-TOTAL,WS-OUT" {
		t.Errorf("cobolWord nodes = %q", got)
	}
	if got := kinds(root, "literal"); strings.Join(got, ",") != `'DONE',X"0A"` {
		t.Errorf("literal nodes = %q", got)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse(strings.NewReader(fixed("MOVE A @ B.")), WithFile("bad.cbl"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if pe.File != "bad.cbl" || pe.Position.Line != 1 || pe.Position.Column != 15 {
		t.Errorf("error at %s:%s, want bad.cbl:1:15", pe.File, pe.Position)
	}
	if !strings.Contains(pe.Error(), `unexpected "@"`) {
		t.Errorf("Error() = %q", pe.Error())
	}
}

func TestParseLexicalError(t *testing.T) {
	_, err := Parse(strings.NewReader("000100 MOVE \xfe\n"))
	var tokErr *tokenizer.Error
	if !errors.As(err, &tokErr) {
		t.Fatalf("err = %v, want a *tokenizer.Error inside", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Position.Column != 13 {
		t.Errorf("err = %v, want a ParseError at column 13", err)
	}
}

func TestParseWithSettings(t *testing.T) {
	s := config.Default()
	s.Format = tokenizer.Free
	s.MaxWordLength = 40
	long := strings.Repeat("N", 35)
	root, err := Parse(strings.NewReader("MOVE 1 TO "+long+"."), WithSettings(s))
	if err != nil {
		t.Fatal(err)
	}
	if got := kinds(root, "cobolWord"); len(got) != 1 || got[0] != long {
		t.Errorf("cobolWord nodes = %q", got)
	}

	// with the default length the word is still source text, but no word
	root, err = Parse(strings.NewReader("MOVE 1 TO "+long+"."), WithFormat(tokenizer.Free))
	if err != nil {
		t.Fatal(err)
	}
	if got := kinds(root, "cobolWord"); len(got) != 0 {
		t.Errorf("cobolWord nodes = %q, want none", got)
	}
}

func TestGrammarIsShared(t *testing.T) {
	if Grammar(31) != Grammar(0) {
		t.Error("Grammar(0) should be the default grammar")
	}
	if Grammar(31) == Grammar(32) {
		t.Error("different lengths share a grammar")
	}
}

func TestCheck(t *testing.T) {
	long := strings.Repeat("A", 40)
	tests := []struct {
		name     string
		src      string
		max      int
		warnings int
	}{
		{name: "clean", src: "MOVE WS-A TO WS-B.", warnings: 0},
		{name: "too long", src: "MOVE " + long + " TO WS-B.", warnings: 1},
		{name: "longer limit", src: "MOVE " + long + " TO WS-B.", max: 50, warnings: 0},
		{name: "operators", src: "COMPUTE X = Y ** 2.", warnings: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(strings.NewReader(tt.src), WithFormat(tokenizer.Free), WithMaxWordLength(tt.max))
			if err != nil {
				t.Fatal(err)
			}
			got := Check(root, tt.max)
			if len(got) != tt.warnings {
				t.Fatalf("got %d warnings, want %d: %v", len(got), tt.warnings, got)
			}
			for _, w := range got {
				if !errors.Is(w.Err, grammar.ErrWordTooLong) || w.Token.Text() != long {
					t.Errorf("warning = %v", w)
				}
				if !strings.HasPrefix(w.Error(), "1:6: ") {
					t.Errorf("Error() = %q", w.Error())
				}
			}
		})
	}
}
