package parser

import (
	"fmt"
	"strings"
)

// Kind discriminates the kinds of parse failure.
type Kind int

const (
	// InvalidSectionHeader is a line starting with '[' that does not match
	// the section header grammar.
	InvalidSectionHeader Kind = iota
	// InvalidOptionLine is a non-blank, non-comment line with no valid
	// "name = value" form.
	InvalidOptionLine
)

func (k Kind) String() string {
	switch k {
	case InvalidSectionHeader:
		return "invalid section header"
	case InvalidOptionLine:
		return "invalid option line"
	default:
		return "parse error"
	}
}

// ParseError represents a syntax error during parsing. It carries the 1-based
// line number and the raw text of the offending line for diagnostics.
type ParseError struct {
	Kind Kind
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Kind, e.Text)
}

func newParseError(kind Kind, line int, text string) *ParseError {
	return &ParseError{
		Kind: kind,
		Line: line,
		Text: strings.TrimRight(text, "\r\n"),
	}
}
