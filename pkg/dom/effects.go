package dom

// EffectAllowed is the set of drag operations a drag source permits. The
// native API collapses the three flags to one of eight canonical strings;
// String covers all 2^3 combinations exhaustively.
type EffectAllowed struct {
	Move bool
	Copy bool
	Link bool
}

func (e EffectAllowed) String() string {
	switch {
	case e.Move && e.Copy && e.Link:
		return "all"
	case e.Copy && e.Link:
		return "copyLink"
	case e.Move && e.Link:
		return "linkMove"
	case e.Move && e.Copy:
		return "copyMove"
	case e.Link:
		return "link"
	case e.Copy:
		return "copy"
	case e.Move:
		return "move"
	}
	return "none"
}

// DropEffect is the operation a drop target proposes for the current drag.
type DropEffect int

const (
	DropNone DropEffect = iota
	DropMove
	DropCopy
	DropLink
)

func (d DropEffect) String() string {
	switch d {
	case DropMove:
		return "move"
	case DropCopy:
		return "copy"
	case DropLink:
		return "link"
	}
	return "none"
}

// ParseDropEffect maps the four native dropEffect strings back to their
// variants. The mapping is a bijection over exactly those four strings; any
// other input reports ok=false.
func ParseDropEffect(s string) (DropEffect, bool) {
	switch s {
	case "none":
		return DropNone, true
	case "move":
		return DropMove, true
	case "copy":
		return DropCopy, true
	case "link":
		return DropLink, true
	}
	return DropNone, false
}
