package conf

import (
	"golang.org/x/exp/slices"
)

// Document is the root of a parsed configuration file: an ordered sequence of
// top-level items plus a name lookup for its sections. The lookup holds
// aliases into the sequence, so removing a section drops it from both in one
// step.
//
// Top-level items are normally Blank, Comment, or Section. Option lines that
// appear before any section header are kept at the top level too, purely for
// faithful re-rendering; they are not reachable through name lookup.
type Document struct {
	items    []Item
	sections map[string]*Section
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		sections: make(map[string]*Section),
	}
}

// Add appends an item to the document. Sections are additionally registered
// in the name lookup.
func (d *Document) Add(item Item) {
	d.items = append(d.items, item)
	if s, ok := item.(*Section); ok {
		d.sections[s.Name] = s
	}
}

// Items returns the document's top-level items in file order.
func (d *Document) Items() []Item {
	return d.items
}

// Section returns the section with the given name. If it does not exist and
// create is true, an empty section is appended at the end of the document,
// preceded by a single blank line; otherwise a NotFoundError is returned.
//
// Section names are case-sensitive.
func (d *Document) Section(name string, create bool) (*Section, error) {
	if s, ok := d.sections[name]; ok {
		return s, nil
	}
	if !create {
		return nil, &NotFoundError{Kind: "section", Name: name}
	}
	s := NewSection(name)
	d.items = append(d.items, Blank{}, s)
	d.sections[name] = s
	return s, nil
}

// Option returns the named option inside the named section, applying the same
// create-or-fetch behavior to both levels.
func (d *Document) Option(section, name string, create bool) (*Option, error) {
	s, err := d.Section(section, create)
	if err != nil {
		return nil, err
	}
	return s.Option(name, create)
}

// RemoveSection removes the named section, its header, and all of its items
// from both the item sequence and the lookup, as a single step. It returns a
// NotFoundError if the name is absent, leaving the document untouched.
//
// Exactly one blank-line separator leaves with the section: the blank it
// already holds as its last item, or failing that the blank immediately
// before its header. This makes removal the inverse of Section's
// create-at-end behavior (blank then section) and keeps the last section of a
// file from leaving its separator behind.
func (d *Document) RemoveSection(name string) error {
	s, ok := d.sections[name]
	if !ok {
		return &NotFoundError{Kind: "section", Name: name}
	}
	i := indexOf(d.items, s)
	d.items = append(d.items[:i], d.items[i+1:]...)
	delete(d.sections, name)

	if n := len(s.items); n > 0 {
		if _, ok := s.items[n-1].(Blank); ok {
			return nil
		}
	}
	d.removeBlankBefore(i)
	return nil
}

// removeBlankBefore drops the blank line preceding position i, whether it is
// a top-level item or the trailing item of the previous section.
func (d *Document) removeBlankBefore(i int) {
	if i == 0 {
		return
	}
	switch prev := d.items[i-1].(type) {
	case Blank:
		d.items = append(d.items[:i-1], d.items[i:]...)
	case *Section:
		if n := len(prev.items); n > 0 {
			if _, ok := prev.items[n-1].(Blank); ok {
				prev.items = prev.items[:n-1]
			}
		}
	}
}

// Clone returns a deep copy of the document sharing no items with the
// original. Transformations take a clone as a snapshot before mutating, so
// the change detector has an independent tree to compare against.
func (d *Document) Clone() *Document {
	out := NewDocument()
	for _, it := range d.items {
		out.Add(cloneItem(it))
	}
	return out
}

func cloneItem(it Item) Item {
	switch v := it.(type) {
	case *Option:
		o := *v
		return &o
	case *Section:
		return v.Clone()
	default:
		// Blank and Comment are immutable values.
		return it
	}
}

// indexOf locates an item in a sequence by identity. The lookup maps
// guarantee the item is present, so a missing item would be an invariant
// violation upstream.
func indexOf(items []Item, target Item) int {
	return slices.IndexFunc(items, func(it Item) bool {
		return it == target
	})
}
