// Package formatter serializes a conf.Document back to text.
//
// Blanks and comments are emitted exactly as parsed. Section headers and
// option lines are re-emitted canonically: one indent unit for headers, two
// for options, "name = value" spacing, and a leading ';' for commented items.
package formatter

import (
	"bytes"
	"context"
	"io"

	"github.com/sbstp/smbconf/conf"
	"github.com/sbstp/smbconf/telemetry"
)

// DefaultIndent is the indent unit applied once per nesting level.
const DefaultIndent = "  "

// Formatter renders documents with a configurable indent unit.
type Formatter struct {
	// Indent is the string applied once per nesting level: section headers
	// get one unit, option lines two.
	Indent string
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithIndent sets the indent unit.
func WithIndent(indent string) Option {
	return func(f *Formatter) {
		f.Indent = indent
	}
}

// New creates a Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		Indent: DefaultIndent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the document to w.
func (f *Formatter) Format(ctx context.Context, doc *conf.Document, w io.Writer) error {
	timer := telemetry.FromContext(ctx).Start("Render document")
	defer timer.End()

	var buf bytes.Buffer
	for _, it := range doc.Items() {
		f.formatItem(&buf, it)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// String renders the document to a string.
func (f *Formatter) String(ctx context.Context, doc *conf.Document) string {
	var buf bytes.Buffer
	_ = f.Format(ctx, doc, &buf)
	return buf.String()
}

func (f *Formatter) formatItem(buf *bytes.Buffer, it conf.Item) {
	switch v := it.(type) {
	case conf.Blank:
		buf.WriteByte('\n')

	case conf.Comment:
		buf.WriteString(v.Text)

	case *conf.Option:
		f.formatOption(buf, v)

	case *conf.Section:
		if v.Commented() {
			buf.WriteByte(';')
		}
		buf.WriteString(f.Indent)
		buf.WriteByte('[')
		buf.WriteString(v.Name)
		buf.WriteString("]\n")
		for _, item := range v.Items() {
			f.formatItem(buf, item)
		}
	}
}

func (f *Formatter) formatOption(buf *bytes.Buffer, o *conf.Option) {
	if o.Commented {
		buf.WriteByte(';')
	}
	buf.WriteString(f.Indent)
	buf.WriteString(f.Indent)
	buf.WriteString(o.Name)
	buf.WriteString(" = ")
	buf.WriteString(o.Value)
	buf.WriteByte('\n')
}
