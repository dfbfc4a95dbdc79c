package chart

import (
	"io"
	"strings"

	"github.com/ms-henglu/orgchart/internal/org"
)

// RenderCompact returns the chart rooted at e with one line per employee:
//
//	Betty Bian
//	├── Konrad Kraikupt
//	└── Lars Littlebear
//	    └── Mandy Maalouf
func RenderCompact(e org.Employee) string {
	var sb strings.Builder
	sb.WriteString(e.Name())
	sb.WriteByte('\n')
	compactReports(&sb, e, "")
	return sb.String()
}

// FprintCompact writes the compact chart rooted at e to w.
func FprintCompact(w io.Writer, e org.Employee) {
	_, _ = io.WriteString(w, RenderCompact(e))
}

func compactReports(sb *strings.Builder, e org.Employee, prefix string) {
	m, ok := e.(*org.Manager)
	if !ok {
		return
	}
	subs := m.Subordinates()
	for i, sub := range subs {
		compactNode(sb, sub, prefix, i == len(subs)-1)
	}
}

func compactNode(sb *strings.Builder, e org.Employee, prefix string, isLast bool) {
	connector := "├── "
	if isLast {
		connector = "└── "
	}

	sb.WriteString(prefix)
	sb.WriteString(connector)
	sb.WriteString(e.Name())
	sb.WriteByte('\n')

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}

	compactReports(sb, e, childPrefix)
}
