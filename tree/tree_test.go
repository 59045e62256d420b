package tree

import (
	"testing"

	"github.com/dhamidi/kobol/data"
)

func tok(text string, line, col int) *data.Token {
	start := data.Position{Offset: col, Line: line, Column: col}
	return data.NewToken(text, start, start.OffsetBy(len(text)-1), data.ProgramTextArea)
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	move, a := tok("MOVE", 1, 8), tok("A", 1, 13)
	for _, d := range []data.Data{
		data.Start("cobol", "sourceText"),
		move,
		data.Start("cobol", "cobolWord"),
		a,
		data.End("cobol", "cobolWord"),
		data.End("cobol", "sourceText"),
	} {
		b.Push(d)
	}
	if err := b.Err(); err != nil {
		t.Fatal(err)
	}

	root := b.Root()
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	st := root.Children[0]
	if st.Kind != "sourceText" || st.Namespace != "cobol" {
		t.Errorf("top node = %s:%s", st.Namespace, st.Kind)
	}
	if got := st.Text(); got != "MOVEA" {
		t.Errorf("Text() = %q", got)
	}
	span, ok := st.Span()
	if !ok || span.Start.Column != 8 || span.End.Column != 13 {
		t.Errorf("Span() = %v, %v", span, ok)
	}

	path := root.Path(1, 13)
	if len(path) != 4 || path[2].Kind != "cobolWord" || path[3].Token != a {
		t.Errorf("Path(1, 13) has %d nodes", len(path))
	}
	if root.Path(1, 12) != nil {
		t.Error("Path(1, 12) found a token between MOVE and A")
	}
}

func TestBuilderUnbalanced(t *testing.T) {
	tests := []struct {
		name string
		data []data.Data
	}{
		{"mismatched end", []data.Data{data.Start("x", "a"), data.End("x", "b")}},
		{"end without start", []data.Data{data.End("x", "a")}},
		{"unclosed", []data.Data{data.Start("x", "a")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			for _, d := range tt.data {
				b.Push(d)
			}
			if b.Err() == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestEmptySpan(t *testing.T) {
	if _, ok := NewNonTerminal("x", "empty").Span(); ok {
		t.Error("empty node has a span")
	}
}
