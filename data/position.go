package data

import "fmt"

// Position is a location in source text. Offset, Line and Column are all
// 1-based and counted in characters.
type Position struct {
	Offset int
	Line   int
	Column int
}

// OffsetBy returns the position n characters further along the same line.
func (p Position) OffsetBy(n int) Position {
	return Position{
		Offset: p.Offset + n,
		Line:   p.Line,
		Column: p.Column + n,
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range spans from Start to End, both inclusive.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
