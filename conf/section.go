package conf

// Section is an ordered container of Blank, Comment, and Option items, with a
// name lookup for its options. The lookup map holds aliases into the item
// sequence; it never owns an option independently.
type Section struct {
	Name string

	commented bool
	items     []Item
	options   map[string]*Option
}

func (*Section) item() {}

// NewSection creates an empty section with the given name.
func NewSection(name string) *Section {
	return &Section{
		Name:    name,
		options: make(map[string]*Option),
	}
}

// Add appends an item to the section. Options are additionally registered in
// the name lookup.
func (s *Section) Add(item Item) {
	s.items = append(s.items, item)
	if o, ok := item.(*Option); ok {
		s.options[o.Name] = o
	}
}

// Items returns the section's items in file order.
func (s *Section) Items() []Item {
	return s.items
}

// Option returns the option with the given name. If it does not exist and
// create is true, an option with an empty value is appended to the section;
// otherwise a NotFoundError is returned.
func (s *Section) Option(name string, create bool) (*Option, error) {
	if o, ok := s.options[name]; ok {
		return o, nil
	}
	if !create {
		return nil, &NotFoundError{Kind: "option", Name: name}
	}
	o := &Option{Name: name}
	s.items = append(s.items, o)
	s.options[name] = o
	return o, nil
}

// RemoveOption removes the named option from both the item sequence and the
// lookup, as a single step. It returns a NotFoundError if the name is absent,
// leaving the section untouched.
func (s *Section) RemoveOption(name string) error {
	o, ok := s.options[name]
	if !ok {
		return &NotFoundError{Kind: "option", Name: name}
	}
	i := indexOf(s.items, o)
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.options, name)
	return nil
}

// Commented reports whether the section header is commented out.
func (s *Section) Commented() bool {
	return s.commented
}

// SetCommented sets the section's commented flag and broadcasts it to every
// option currently in the section. Options added afterwards are not affected;
// the flag is not a persistent group attribute.
func (s *Section) SetCommented(v bool) {
	s.commented = v
	for _, o := range s.options {
		o.Commented = v
	}
}

// Clone returns a deep copy of the section sharing no items with the
// original.
func (s *Section) Clone() *Section {
	out := NewSection(s.Name)
	out.commented = s.commented
	for _, it := range s.items {
		out.Add(cloneItem(it))
	}
	return out
}
