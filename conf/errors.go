package conf

import "fmt"

// NotFoundError reports a non-creating lookup or a removal of a section or
// option name that does not exist.
type NotFoundError struct {
	Kind string // "section" or "option"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}
