package conf

import (
	"golang.org/x/exp/slices"
)

// Equal reports whether two documents are structurally identical: same item
// sequences, compared pairwise by position and recursively for sections.
//
// The comparison walks both trees field by field. Comparing a document
// against its own snapshot clone is the intended use; comparing a document
// against itself trivially returns true and detects nothing.
func Equal(a, b *Document) bool {
	return slices.EqualFunc(a.items, b.items, itemEqual)
}

func itemEqual(a, b Item) bool {
	switch av := a.(type) {
	case Blank:
		_, ok := b.(Blank)
		return ok
	case Comment:
		bv, ok := b.(Comment)
		return ok && av.Text == bv.Text
	case *Option:
		bv, ok := b.(*Option)
		return ok && *av == *bv
	case *Section:
		bv, ok := b.(*Section)
		return ok &&
			av.Name == bv.Name &&
			av.commented == bv.commented &&
			slices.EqualFunc(av.items, bv.items, itemEqual)
	}
	return false
}
