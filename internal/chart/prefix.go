package chart

// BoxPrefix holds the left margins prepended to the three lines of an
// employee's box: the top border, the name line and the bottom border.
//
// For Betty Bian, a non-last report of a non-last report of the root,
// the margins are:
//
//	Top:      "  |    |  "
//	Interior: "  |    +--"
//	Bottom:   "  |    |  "
type BoxPrefix struct {
	Top      string
	Interior string
	Bottom   string
}

// EmptyPrefix is the prefix of the root of a chart.
var EmptyPrefix = BoxPrefix{}

const (
	stem    = "  |  "
	branch  = "  +--"
	stemEnd = "     "
)

// ChildPrefix derives the prefix of a direct report from its manager's prefix.
// hasSiblings reports whether more reports follow the child; only the bottom
// margin depends on it, continuing the stem for the next sibling's branch.
// Every margin starts with the manager's bottom margin, so a subtree renders
// the same at any depth, shifted right by that margin.
func ChildPrefix(parent BoxPrefix, hasSiblings bool) BoxPrefix {
	bottom := stemEnd
	if hasSiblings {
		bottom = stem
	}
	return BoxPrefix{
		Top:      parent.Bottom + stem,
		Interior: parent.Bottom + branch,
		Bottom:   parent.Bottom + bottom,
	}
}
