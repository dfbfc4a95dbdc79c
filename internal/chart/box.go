package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/apparentlymart/go-textseg/v15/textseg"
	"github.com/ms-henglu/orgchart/internal/org"
)

// Fprint writes the box chart rooted at e to w.
func Fprint(w io.Writer, e org.Employee) {
	_, _ = io.WriteString(w, Render(e))
}

// Render returns the box chart rooted at e, as if e were the top of the organisation.
//
//	+------------+
//	| Betty Bian |
//	+------------+
//	  |  +-----------------+
//	  +--| Konrad Kraikupt |
//	  |  +-----------------+
//	  |  +-----------------+
//	  +--| Lars Littlebear |
//	     +-----------------+
func Render(e org.Employee) string {
	return RenderWithPrefix(e, EmptyPrefix)
}

// RenderWithPrefix returns the box chart rooted at e, indented and connected
// as if e were embedded in a larger chart at the position described by prefix.
func RenderWithPrefix(e org.Employee, prefix BoxPrefix) string {
	var sb strings.Builder
	render(&sb, e, prefix)
	return sb.String()
}

func render(sb *strings.Builder, e org.Employee, prefix BoxPrefix) {
	switch e := e.(type) {
	case *org.IndividualContributor:
		writeBox(sb, e.Name(), prefix)
	case *org.Manager:
		writeBox(sb, e.Name(), prefix)
		subs := e.Subordinates()
		for i, sub := range subs {
			render(sb, sub, ChildPrefix(prefix, i < len(subs)-1))
		}
	default:
		panic(fmt.Sprintf("chart: unsupported employee %T", e))
	}
}

// Box returns the three-line box for name, each line prefixed by the matching margin.
func Box(name string, prefix BoxPrefix) string {
	var sb strings.Builder
	writeBox(&sb, name, prefix)
	return sb.String()
}

func writeBox(sb *strings.Builder, name string, prefix BoxPrefix) {
	border := "+" + strings.Repeat("-", Width(name)+2) + "+"

	sb.WriteString(prefix.Top)
	sb.WriteString(border)
	sb.WriteByte('\n')

	sb.WriteString(prefix.Interior)
	sb.WriteString("| ")
	sb.WriteString(name)
	sb.WriteString(" |")
	sb.WriteByte('\n')

	sb.WriteString(prefix.Bottom)
	sb.WriteString(border)
	sb.WriteByte('\n')
}

// Width is the number of user-perceived characters (grapheme clusters) in name.
// Wide glyphs such as CJK ideographs count as one and will misalign the box.
func Width(name string) int {
	n, err := textseg.TokenCount([]byte(name), textseg.ScanGraphemeClusters)
	if err != nil {
		return len([]rune(name))
	}
	return n
}
