package data

import "strings"

type Tag uint8

const (
	// Areas of a fixed format source line.
	SequenceNumberArea Tag = iota
	IndicatorArea
	ProgramTextArea
	IdentificationArea
	EndOfLine

	// Syntactic roles.
	CharacterString
	Separator
	Comment

	// Literal kinds.
	IntegerLiteral
	DecimalLiteral
	BooleanLiteral
	HexadecimalLiteral
	StringLiteral
	PseudoLiteral

	tagCount
)

var tagNames = map[Tag]string{
	SequenceNumberArea: "SEQUENCE_NUMBER_AREA",
	IndicatorArea:      "INDICATOR_AREA",
	ProgramTextArea:    "PROGRAM_TEXT_AREA",
	IdentificationArea: "IDENTIFICATION_AREA",
	EndOfLine:          "END_OF_LINE",
	CharacterString:    "CHARACTER_STRING",
	Separator:          "SEPARATOR",
	Comment:            "COMMENT",
	IntegerLiteral:     "INTEGER_LITERAL",
	DecimalLiteral:     "DECIMAL_LITERAL",
	BooleanLiteral:     "BOOLEAN_LITERAL",
	HexadecimalLiteral: "HEXADECIMAL_LITERAL",
	StringLiteral:      "STRING_LITERAL",
	PseudoLiteral:      "PSEUDO_LITERAL",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// LookupTag returns the tag with the given name, as produced by Tag.String.
func LookupTag(name string) (Tag, bool) {
	for tag, n := range tagNames {
		if n == name {
			return tag, true
		}
	}
	return 0, false
}

// Tags is an immutable set of tags.
type Tags uint32

func NewTags(tags ...Tag) Tags {
	var s Tags
	for _, t := range tags {
		s |= 1 << t
	}
	return s
}

func (s Tags) Has(t Tag) bool {
	return s&(1<<t) != 0
}

func (s Tags) With(tags ...Tag) Tags {
	return s | NewTags(tags...)
}

func (s Tags) Without(tags ...Tag) Tags {
	return s &^ NewTags(tags...)
}

func (s Tags) Len() int {
	n := 0
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			n++
		}
	}
	return n
}

// Slice returns the members of the set in declaration order.
func (s Tags) Slice() []Tag {
	var tags []Tag
	for t := Tag(0); t < tagCount; t++ {
		if s.Has(t) {
			tags = append(tags, t)
		}
	}
	return tags
}

func (s Tags) String() string {
	names := make([]string, 0, s.Len())
	for _, t := range s.Slice() {
		names = append(names, t.String())
	}
	return strings.Join(names, ",")
}
