package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sbstp/smbconf/parser"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats an error. Parse errors get the surrounding source lines and
// a caret under the offending line's content; everything else renders as its
// message.
func (r *ErrorRenderer) Render(err error) string {
	if e, ok := err.(*parser.ParseError); ok && r.source != nil {
		return r.renderWithSourceContext(e)
	}
	return err.Error()
}

func (r *ErrorRenderer) renderWithSourceContext(e *parser.ParseError) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(e.Error()))
	buf.WriteString("\n\n")

	sourceLines := strings.Split(string(r.source), "\n")

	startLine := e.Line - 3
	endLine := e.Line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(sourceLines[i]))
		buf.WriteByte('\n')

		if i == e.Line-1 {
			// Point at the first non-blank character; measure the leading
			// whitespace by display width so wide runes stay aligned.
			leading := sourceLines[i][:len(sourceLines[i])-len(strings.TrimLeft(sourceLines[i], " \t"))]
			buf.WriteString("   ")
			buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(leading)))
			buf.WriteString(errCaretStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}
