package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/sbstp/smbconf/conf"
)

func mustOptionValue(t *testing.T, doc *conf.Document, section, name string) string {
	t.Helper()
	o, err := doc.Option(section, name, false)
	assert.NoError(t, err)
	return o.Value
}

func TestParseOK(t *testing.T) {
	doc, err := ParseString(context.Background(), `# this is a samba config file
[share1]
  prop1 = prop1
  prop2=prop2
  prop3= prop3
  prop4 =prop4
  prop5     =      prop5
  ;prop6 =prop6
[share2]
  prop1 = prop1
  prop2 =
;[share3]
# hello
; world
`)
	assert.NoError(t, err)

	first, ok := doc.Items()[0].(conf.Comment)
	assert.True(t, ok)
	assert.Equal(t, "# this is a samba config file\n", first.Text)

	assert.Equal(t, "prop1", mustOptionValue(t, doc, "share1", "prop1"))
	assert.Equal(t, "prop2", mustOptionValue(t, doc, "share1", "prop2"))
	assert.Equal(t, "prop3", mustOptionValue(t, doc, "share1", "prop3"))
	assert.Equal(t, "prop4", mustOptionValue(t, doc, "share1", "prop4"))
	assert.Equal(t, "prop5", mustOptionValue(t, doc, "share1", "prop5"))

	// A commented option line is a comment, not an option.
	_, err = doc.Option("share1", "prop6", false)
	assert.Error(t, err)

	assert.Equal(t, "prop1", mustOptionValue(t, doc, "share2", "prop1"))
	assert.Equal(t, "", mustOptionValue(t, doc, "share2", "prop2"))

	// A commented-out header does not open a section.
	_, err = doc.Section("share3", false)
	assert.Error(t, err)

	// The trailing comments belong to the section that was open when they
	// appeared.
	share2, err := doc.Section("share2", false)
	assert.NoError(t, err)
	items := share2.Items()
	last, ok := items[len(items)-1].(conf.Comment)
	assert.True(t, ok)
	assert.Equal(t, "; world\n", last.Text)
}

func TestParseKeepsCommentBytes(t *testing.T) {
	doc, err := ParseString(context.Background(), `[share1]
  ;prop6 =prop6
; max log size = in KB, see smb.conf(5)
;  [share3]
`)
	assert.NoError(t, err)

	// Every ';' line is held verbatim, whatever it happens to look like:
	// never re-trimmed, never promoted to an option or a section.
	share1, err := doc.Section("share1", false)
	assert.NoError(t, err)
	texts := []string{}
	for _, item := range share1.Items() {
		c, ok := item.(conf.Comment)
		assert.True(t, ok)
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{
		"  ;prop6 =prop6\n",
		"; max log size = in KB, see smb.conf(5)\n",
		";  [share3]\n",
	}, texts)

	_, err = doc.Option("share1", "prop6", false)
	assert.Error(t, err)
	_, err = doc.Option("share1", "max log size", false)
	assert.Error(t, err)
	_, err = doc.Section("share3", false)
	assert.Error(t, err)
}

func TestParseBlankAndCommentContainers(t *testing.T) {
	doc, err := ParseString(context.Background(), `# top

[a]
  x = 1

# inside a
[b]
  y = 2
`)
	assert.NoError(t, err)

	// Top-level: comment, blank, section a, section b. The blank and the
	// comment after [a] live inside section a.
	assert.Equal(t, 4, len(doc.Items()))

	a, err := doc.Section("a", false)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(a.Items()))
	_, ok := a.Items()[1].(conf.Blank)
	assert.True(t, ok)
	_, ok = a.Items()[2].(conf.Comment)
	assert.True(t, ok)
}

func TestParseDuplicateHeaderContinuesSection(t *testing.T) {
	doc, err := ParseString(context.Background(), `[a]
  x = 1
[b]
  y = 2
[a]
  z = 3
`)
	assert.NoError(t, err)

	assert.Equal(t, "1", mustOptionValue(t, doc, "a", "x"))
	assert.Equal(t, "3", mustOptionValue(t, doc, "a", "z"))

	// The second [a] header re-enters the existing section rather than
	// creating a duplicate top-level item.
	assert.Equal(t, 2, len(doc.Items()))
}

func TestParseOptionBeforeAnySection(t *testing.T) {
	doc, err := ParseString(context.Background(), `orphan = 1
[a]
  x = 2
`)
	assert.NoError(t, err)

	o, ok := doc.Items()[0].(*conf.Option)
	assert.True(t, ok, "pre-section option lines pass through to the top level")
	assert.Equal(t, "orphan", o.Name)
	assert.Equal(t, "1", o.Value)

	// It is not reachable through any section lookup.
	_, err = doc.Option("a", "orphan", false)
	assert.Error(t, err)
}

func TestParseInvalidSectionHeader(t *testing.T) {
	_, err := ParseString(context.Background(), "[[share1]")
	assert.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, InvalidSectionHeader, parseErr.Kind)
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, "[[share1]", parseErr.Text)
}

func TestParseInvalidOptionLine(t *testing.T) {
	_, err := ParseString(context.Background(), "prop1")
	assert.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, InvalidOptionLine, parseErr.Kind)
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, "prop1", parseErr.Text)
}

func TestParseErrorLineNumbers(t *testing.T) {
	_, err := ParseString(context.Background(), "# fine\n\n[a]\n  broken\n")
	assert.Error(t, err)

	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, InvalidOptionLine, parseErr.Kind)
	assert.Equal(t, 4, parseErr.Line)
	assert.Equal(t, "  broken", parseErr.Text)
}

func TestParseHeaderGrammar(t *testing.T) {
	for _, line := range []string{"[]", "[a]b", "[a[b]]", "[a\n", "[x] trailing"} {
		_, err := ParseString(context.Background(), line)
		assert.Error(t, err, "expected %q to be rejected", line)
	}

	doc, err := ParseString(context.Background(), "   [ spaced name ]   \n")
	assert.NoError(t, err)
	_, err = doc.Section(" spaced name ", false)
	assert.NoError(t, err)
}

func TestParseAbortsWithoutPartialDocument(t *testing.T) {
	_, err := ParseString(context.Background(), "[ok]\n  a = 1\nnot an option\n  b = 2\n")
	assert.Error(t, err)
}
