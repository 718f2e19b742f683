// Package conf declares the types used to represent parsed smb.conf-style
// configuration files.
//
// A Document is an ordered tree of items. Every line of the source file maps
// to exactly one item, so a document can be rendered back to text without
// losing comments, blank lines, or ordering. Documents can be created by
// parsing an existing file using the parser package, or constructed
// programmatically for generating configuration output.
package conf

// Item is implemented by every node that can appear in a document: Blank,
// Comment, Option, and Section. The set is closed; the formatter and the
// equality check both switch exhaustively over it.
type Item interface {
	item()
}

// Blank represents exactly one empty line.
type Blank struct{}

func (Blank) item() {}

// Comment holds a comment line verbatim, including its marker, leading
// whitespace, and trailing newline. It is never re-formatted on render.
type Comment struct {
	Text string
}

func (Comment) item() {}

// Option is a single name/value assignment. The value is an opaque string;
// no type checking is performed on it.
type Option struct {
	Name      string
	Value     string
	Commented bool
}

func (*Option) item() {}
