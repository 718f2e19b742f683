package cli

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// unifiedDiff returns a unified diff between the current and the edited
// contents of a file. Empty when the contents are identical.
func unifiedDiff(filename, before, after string) string {
	edits := myers.ComputeEdits(span.URIFromPath(filename), before, after)
	return fmt.Sprint(gotextdiff.ToUnified(filename, filename+" (edited)", before, edits))
}
