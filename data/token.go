package data

import (
	"strings"
	"unicode/utf8"
)

// Token is a piece of source text carrying one or more source ranges and a
// set of tags. Tokens are immutable and may be shared freely.
type Token struct {
	text   string
	ranges []Range
	tags   Tags
}

func NewToken(text string, start, end Position, tags ...Tag) *Token {
	return &Token{
		text:   text,
		ranges: []Range{{Start: start, End: end}},
		tags:   NewTags(tags...),
	}
}

// NewTokenWithRanges creates a token spanning the given ranges, which must
// not be empty.
func NewTokenWithRanges(text string, ranges []Range, tags ...Tag) *Token {
	if len(ranges) == 0 {
		panic("data: token without ranges")
	}
	return &Token{
		text:   text,
		ranges: append([]Range(nil), ranges...),
		tags:   NewTags(tags...),
	}
}

// Compose creates a token whose text and ranges are the concatenation of
// those of the given tokens. The tags of the originals are not carried
// over; the new token has exactly the tags passed here.
func Compose(tokens []*Token, tags ...Tag) *Token {
	if len(tokens) == 0 {
		panic("data: composing zero tokens")
	}
	var sb strings.Builder
	var ranges []Range
	for _, t := range tokens {
		sb.WriteString(t.text)
		ranges = append(ranges, t.ranges...)
	}
	return &Token{
		text:   sb.String(),
		ranges: ranges,
		tags:   NewTags(tags...),
	}
}

func (t *Token) Text() string {
	return t.text
}

// Len returns the length of the text in characters.
func (t *Token) Len() int {
	return utf8.RuneCountInString(t.text)
}

func (t *Token) Start() Position {
	return t.ranges[0].Start
}

func (t *Token) End() Position {
	return t.ranges[len(t.ranges)-1].End
}

// Ranges returns a copy of the token's ranges.
func (t *Token) Ranges() []Range {
	return append([]Range(nil), t.ranges...)
}

func (t *Token) Tags() Tags {
	return t.tags
}

func (t *Token) HasTag(tag Tag) bool {
	return t.tags.Has(tag)
}

func (t *Token) TagCount() int {
	return t.tags.Len()
}

// WithTags returns a copy of the token with the given tags added, or the
// token itself when it already carries all of them.
func (t *Token) WithTags(tags ...Tag) *Token {
	return t.retag(t.tags.With(tags...))
}

// WithoutTags returns a copy of the token minus the given tags, or the
// token itself when it carries none of them.
func (t *Token) WithoutTags(tags ...Tag) *Token {
	return t.retag(t.tags.Without(tags...))
}

// ReplacingTag returns a copy of the token with oldTag removed and newTag
// added.
func (t *Token) ReplacingTag(oldTag, newTag Tag) *Token {
	return t.retag(t.tags.Without(oldTag).With(newTag))
}

func (t *Token) retag(tags Tags) *Token {
	if tags == t.tags {
		return t
	}
	return &Token{text: t.text, ranges: t.ranges, tags: tags}
}

func (t *Token) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(t.Start().String())
	sb.WriteString("|")
	sb.WriteString(t.text)
	sb.WriteString("|")
	sb.WriteString(t.End().String())
	sb.WriteString("]")
	for _, tag := range t.tags.Slice() {
		sb.WriteString(" @")
		sb.WriteString(tag.String())
	}
	return sb.String()
}

func (*Token) isData() {}
