// Package transform applies structural edits to a configuration document.
//
// A single entry point, Apply, covers the four supported edits: set an
// option's value, remove an option, remove a section, and comment out an
// option or a section. Every mutation is local to the targeted section or
// option; unrelated items are never reordered or rewritten.
package transform

import (
	"fmt"

	"github.com/sbstp/smbconf/conf"
)

// State is the desired state of the targeted section or option.
type State int

const (
	// Present sets an option to a value, creating the section and option as
	// needed, and reactivates the option if it was commented out.
	Present State = iota
	// Absent removes an option, or a whole section when no option is named.
	Absent
	// Commented comments out an option, or a whole section (cascading to its
	// current options) when no option is named.
	Commented
)

func (s State) String() string {
	switch s {
	case Present:
		return "present"
	case Absent:
		return "absent"
	case Commented:
		return "commented"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState converts the wire form of a state ("present", "absent",
// "commented") into a State.
func ParseState(s string) (State, error) {
	switch s {
	case "present":
		return Present, nil
	case "absent":
		return Absent, nil
	case "commented":
		return Commented, nil
	default:
		return 0, fmt.Errorf("unknown state %q", s)
	}
}

// Request describes one edit to apply to a document.
type Request struct {
	Section string
	State   State
	Option  string
	Value   string
}

// Validate enforces the parameter contract before any document is touched:
// Present requires both an option and a value; Absent and Commented forbid a
// value when an option is named.
func (r Request) Validate() error {
	if r.Section == "" {
		return fmt.Errorf("section is required")
	}
	switch r.State {
	case Present:
		if r.Option == "" || r.Value == "" {
			return fmt.Errorf("state %q requires both an option and a value", r.State)
		}
	case Absent, Commented:
		if r.Option != "" && r.Value != "" {
			return fmt.Errorf("state %q does not accept a value for an option", r.State)
		}
	}
	return nil
}

// Apply performs the requested edit on the document. Lookup failures surface
// as *conf.NotFoundError and leave the document unmodified; there is no
// partial mutation.
func Apply(doc *conf.Document, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	switch {
	case req.State == Absent && req.Option == "":
		return doc.RemoveSection(req.Section)

	case req.State == Absent:
		sec, err := doc.Section(req.Section, false)
		if err != nil {
			return err
		}
		return sec.RemoveOption(req.Option)

	case req.State == Commented && req.Option == "":
		sec, err := doc.Section(req.Section, true)
		if err != nil {
			return err
		}
		sec.SetCommented(true)
		return nil

	case req.State == Commented:
		opt, err := doc.Option(req.Section, req.Option, true)
		if err != nil {
			return err
		}
		opt.Commented = true
		return nil

	default: // Present
		opt, err := doc.Option(req.Section, req.Option, true)
		if err != nil {
			return err
		}
		opt.Value = req.Value
		// Present and commented are mutually exclusive; setting a value
		// reactivates the option.
		opt.Commented = false
		return nil
	}
}
