package data

import (
	"reflect"
	"testing"
)

func pos(offset, line, column int) Position {
	return Position{Offset: offset, Line: line, Column: column}
}

func TestPositionOffsetBy(t *testing.T) {
	p := pos(10, 2, 3).OffsetBy(4)
	if p != pos(14, 2, 7) {
		t.Errorf("OffsetBy(4) = %+v, want %+v", p, pos(14, 2, 7))
	}
	if got := p.String(); got != "2:7" {
		t.Errorf("String() = %q, want %q", got, "2:7")
	}
}

func TestTokenAccessors(t *testing.T) {
	tok := NewToken("MOVE", pos(8, 1, 8), pos(11, 1, 11), ProgramTextArea, CharacterString)

	if tok.Text() != "MOVE" {
		t.Errorf("Text() = %q, want %q", tok.Text(), "MOVE")
	}
	if tok.Len() != 4 {
		t.Errorf("Len() = %d, want 4", tok.Len())
	}
	if tok.Start() != pos(8, 1, 8) {
		t.Errorf("Start() = %v", tok.Start())
	}
	if tok.End() != pos(11, 1, 11) {
		t.Errorf("End() = %v", tok.End())
	}
	if !tok.HasTag(ProgramTextArea) || !tok.HasTag(CharacterString) {
		t.Errorf("missing tags: %v", tok.Tags())
	}
	if tok.HasTag(Separator) {
		t.Errorf("unexpected SEPARATOR tag")
	}
	if tok.TagCount() != 2 {
		t.Errorf("TagCount() = %d, want 2", tok.TagCount())
	}
}

func TestTokenLenCountsCharacters(t *testing.T) {
	tok := NewToken("ÄÖÜ", pos(1, 1, 1), pos(3, 1, 3))
	if tok.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tok.Len())
	}
}

func TestNewTokenWithRangesPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for empty ranges")
		}
	}()
	NewTokenWithRanges("x", nil)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		parts []*Token
	}{
		{
			name: "single",
			parts: []*Token{
				NewToken("IF", pos(8, 1, 8), pos(9, 1, 9), ProgramTextArea, CharacterString, Separator),
			},
		},
		{
			name: "several",
			parts: []*Token{
				NewToken("IF", pos(8, 1, 8), pos(9, 1, 9), ProgramTextArea, CharacterString),
				NewToken("-THEN", pos(10, 1, 10), pos(14, 1, 14), IntegerLiteral),
				NewToken("-1", pos(90, 2, 8), pos(91, 2, 9), Comment),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composed := Compose(tt.parts, StringLiteral)

			wantText := ""
			var wantRanges []Range
			for _, p := range tt.parts {
				wantText += p.Text()
				wantRanges = append(wantRanges, p.Ranges()...)
			}

			if composed.Text() != wantText {
				t.Errorf("Text() = %q, want %q", composed.Text(), wantText)
			}
			if !reflect.DeepEqual(composed.Ranges(), wantRanges) {
				t.Errorf("Ranges() = %v, want %v", composed.Ranges(), wantRanges)
			}
			if composed.Tags() != NewTags(StringLiteral) {
				t.Errorf("Tags() = %v, want only STRING_LITERAL", composed.Tags())
			}
			if composed.Start() != tt.parts[0].Start() {
				t.Errorf("Start() = %v, want %v", composed.Start(), tt.parts[0].Start())
			}
			if composed.End() != tt.parts[len(tt.parts)-1].End() {
				t.Errorf("End() = %v, want %v", composed.End(), tt.parts[len(tt.parts)-1].End())
			}
		})
	}
}

func TestTagOperations(t *testing.T) {
	tok := NewToken("A", pos(1, 1, 1), pos(1, 1, 1), ProgramTextArea)

	if got := tok.WithTags(); got != tok {
		t.Errorf("WithTags() without tags should return the same token")
	}
	if got := tok.WithTags(ProgramTextArea); got != tok {
		t.Errorf("WithTags of a present tag should return the same token")
	}
	if got := tok.WithoutTags(Comment); got != tok {
		t.Errorf("WithoutTags of an absent tag should return the same token")
	}

	added := tok.WithTags(CharacterString)
	if added == tok {
		t.Fatalf("WithTags should return a new token")
	}
	if !added.HasTag(CharacterString) || !added.HasTag(ProgramTextArea) {
		t.Errorf("added tags = %v", added.Tags())
	}
	if tok.HasTag(CharacterString) {
		t.Errorf("original token was modified")
	}

	removed := added.WithoutTags(ProgramTextArea)
	if removed.HasTag(ProgramTextArea) || !removed.HasTag(CharacterString) {
		t.Errorf("removed tags = %v", removed.Tags())
	}

	replaced := tok.ReplacingTag(ProgramTextArea, IdentificationArea)
	if replaced.HasTag(ProgramTextArea) || !replaced.HasTag(IdentificationArea) {
		t.Errorf("replaced tags = %v", replaced.Tags())
	}
	if replaced.Text() != tok.Text() || replaced.Start() != tok.Start() {
		t.Errorf("replacing a tag changed text or position")
	}
}

func TestTokenString(t *testing.T) {
	tok := NewToken("A", pos(8, 1, 8), pos(8, 1, 8), ProgramTextArea, CharacterString)
	want := "[1:8|A|1:8] @PROGRAM_TEXT_AREA @CHARACTER_STRING"
	if got := tok.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLookupTag(t *testing.T) {
	for tag := Tag(0); tag < tagCount; tag++ {
		got, ok := LookupTag(tag.String())
		if !ok || got != tag {
			t.Errorf("LookupTag(%q) = %v, %v", tag.String(), got, ok)
		}
	}
	if _, ok := LookupTag("NOPE"); ok {
		t.Errorf("LookupTag(NOPE) should fail")
	}
}
