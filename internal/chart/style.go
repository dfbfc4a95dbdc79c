package chart

import (
	"fmt"
	"io"

	"github.com/ms-henglu/orgchart/internal/org"
)

// Style selects how a chart is drawn.
type Style string

const (
	StyleBox  Style = "box"
	StyleTree Style = "tree"
)

// ParseStyle validates a style name. An empty name means StyleBox.
func ParseStyle(s string) (Style, error) {
	switch Style(s) {
	case "", StyleBox:
		return StyleBox, nil
	case StyleTree:
		return StyleTree, nil
	}
	return "", fmt.Errorf("unknown chart style %q (expected %q or %q)", s, StyleBox, StyleTree)
}

// RenderStyle renders the chart rooted at e in the given style.
func RenderStyle(e org.Employee, style Style) string {
	if style == StyleTree {
		return RenderCompact(e)
	}
	return Render(e)
}

// FprintStyle writes the chart rooted at e to w in the given style.
func FprintStyle(w io.Writer, e org.Employee, style Style) {
	if style == StyleTree {
		FprintCompact(w, e)
		return
	}
	Fprint(w, e)
}
