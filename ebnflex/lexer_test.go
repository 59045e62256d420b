package ebnflex

import (
	"io"
	"strings"
	"testing"
)

const numbers = `
Token  = Blank | Number | Word | Arrow | Minus .
Blank  = " " { " " } .
Number = digit { digit } [ "." digit { digit } ] .
Word   = letter { letter | digit } .
Arrow  = "->" .
Minus  = "-" .
Quoted = "«" { "a" … "z" } "»" .
digit  = "0" … "9" .
letter = "a" … "z" | "ä" .
`

func mustGrammar(t *testing.T, src, start string) *Grammar {
	t.Helper()
	g, err := ParseGrammar("test.ebnf", strings.NewReader(src), start)
	if err != nil {
		t.Fatalf("ParseGrammar: %v", err)
	}
	return g
}

func TestParseGrammarVerifies(t *testing.T) {
	_, err := ParseGrammar("test.ebnf", strings.NewReader(numbers), "Token")
	if err == nil {
		t.Fatal("expected an error for the unreachable production Quoted")
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("error = %v, want it to mention the unreachable production", err)
	}
}

func TestParseGrammarRejectsStartWithoutNames(t *testing.T) {
	_, err := ParseGrammar("test.ebnf", strings.NewReader(`Token = "a" | "b" .`), "Token")
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestKinds(t *testing.T) {
	src := strings.Replace(numbers, "| Minus .", "| Minus | Quoted .", 1)
	g := mustGrammar(t, src, "Token")
	want := []string{"Blank", "Number", "Word", "Arrow", "Minus", "Quoted"}
	got := g.Kinds()
	if len(got) != len(want) {
		t.Fatalf("Kinds() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Kinds()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNextToken(t *testing.T) {
	src := strings.Replace(numbers, "| Minus .", "| Minus | Quoted .", 1)
	g := mustGrammar(t, src, "Token")

	tests := []struct {
		input string
		want  []string
	}{
		{"abc 12", []string{"Word:abc", "Blank: ", "Number:12"}},
		{"12.5", []string{"Number:12.5"}},
		// the optional fraction must not make the whole number fail
		{"12.", []string{"Number:12", "ERROR:."}},
		{"->-", []string{"Arrow:->", "Minus:-"}},
		{"«äb»", []string{"ERROR:«", "Word:äb", "ERROR:»"}},
		{"«ab»x", []string{"Quoted:«ab»", "Word:x"}},
		{"a1b2", []string{"Word:a1b2"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewLexer(g, tt.input, "")
			var got []string
			for {
				tok, err := l.NextToken()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("NextToken: %v", err)
				}
				got = append(got, tok.Kind+":"+tok.Literal)
			}
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTieGoesToEarlierKind(t *testing.T) {
	g := mustGrammar(t, `
Token   = Keyword | Name .
Keyword = "if" .
Name    = letter { letter } .
letter  = "a" … "z" .
`, "Token")
	toks, err := NewLexer(g, "if", "").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != "Keyword" {
		t.Errorf("kind = %q, want Keyword", toks[0].Kind)
	}

	toks, err = NewLexer(g, "iffy", "").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Kind != "Name" || toks[0].Literal != "iffy" {
		t.Errorf("got %v, want Name iffy", toks[0])
	}
}

func TestPositions(t *testing.T) {
	g := mustGrammar(t, `
Token = Word | Break .
Word  = "a" … "z" { "a" … "z" } .
Break = "\n" .
`, "Token")
	toks, err := NewLexer(g, "ab\ncd", "x.cbl").Tokenize()
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 {
		t.Fatalf("got %d tokens, want 4", len(toks))
	}
	last := toks[2]
	if last.Position.Line != 2 || last.Position.Column != 1 || last.Position.Offset != 3 {
		t.Errorf("position = %+v, want line 2 column 1 offset 3", last.Position)
	}
	if got := last.Position.String(); got != "x.cbl:2:1" {
		t.Errorf("String() = %q", got)
	}
	if toks[3].Kind != "EOF" {
		t.Errorf("last kind = %q, want EOF", toks[3].Kind)
	}
}
