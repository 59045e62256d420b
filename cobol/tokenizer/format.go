package tokenizer

import (
	"fmt"
	"strings"
)

// Format is the reference format of a source file.
type Format int

const (
	// Fixed format splits each line into a sequence number area (columns
	// 1-6), an indicator area (column 7), the program text area (columns
	// 8-72) and an identification area (column 73 onwards).
	Fixed Format = iota

	// Free format treats each line as program text.
	Free
)

func (f Format) String() string {
	switch f {
	case Fixed:
		return "fixed"
	case Free:
		return "free"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "fixed" or "free", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fixed":
		return Fixed, nil
	case "free":
		return Free, nil
	default:
		return Fixed, fmt.Errorf("unknown source format %q (want fixed or free)", s)
	}
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
