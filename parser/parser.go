// Package parser converts raw smb.conf-style text into a conf.Document.
//
// The parser is line oriented: every input line becomes exactly one item in
// the resulting document, so canonically formatted input renders back to
// itself. Parsing aborts on the first malformed line; no partial document is
// ever returned.
package parser

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/sbstp/smbconf/conf"
	"github.com/sbstp/smbconf/telemetry"
)

var (
	sectionHeader = regexp.MustCompile(`^\s*\[([^\[\]]+)\]\s*$`)
	optionLine    = regexp.MustCompile(`^\s*(.+?)\s*=\s*(.*?)\s*$`)
)

// container is implemented by conf.Document and conf.Section; the parser
// appends blanks, comments, and options to whichever is current.
type container interface {
	Add(conf.Item)
}

// ParseString parses configuration text into a document.
func ParseString(ctx context.Context, source string) (*conf.Document, error) {
	return ParseBytes(ctx, []byte(source))
}

// ParseBytes parses configuration text into a document.
//
// Dispatch per line, after trimming whitespace:
//   - empty line: a Blank in the current container
//   - starts with '#' or ';': a Comment holding the original line verbatim
//   - starts with '[': a section header; the named section becomes the
//     current container (a duplicate header re-enters the existing section)
//   - anything else: an option line, "name = value"
//
// Option lines that appear before any section header are appended to the
// document's top level. They survive re-rendering but are not reachable via
// name lookup.
func ParseBytes(ctx context.Context, source []byte) (*conf.Document, error) {
	timer := telemetry.FromContext(ctx).Start("Parse configuration")
	defer timer.End()

	doc := conf.NewDocument()
	current := container(doc)

	lineno := 0
	for start := 0; start < len(source); {
		end := len(source)
		if i := bytes.IndexByte(source[start:], '\n'); i >= 0 {
			end = start + i + 1
		}
		line := string(source[start:end])
		start = end
		lineno++

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			current.Add(conf.Blank{})

		case trimmed[0] == '#' || trimmed[0] == ';':
			current.Add(conf.Comment{Text: line})

		case trimmed[0] == '[':
			m := sectionHeader.FindStringSubmatch(line)
			if m == nil {
				return nil, newParseError(InvalidSectionHeader, lineno, line)
			}
			sec, err := doc.Section(m[1], false)
			if err != nil {
				sec = conf.NewSection(m[1])
				doc.Add(sec)
			}
			current = sec

		default:
			m := optionLine.FindStringSubmatch(line)
			if m == nil {
				return nil, newParseError(InvalidOptionLine, lineno, line)
			}
			current.Add(&conf.Option{Name: m[1], Value: m[2]})
		}
	}

	return doc, nil
}
