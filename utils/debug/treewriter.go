// Package debug renders indented text trees for troubleshooting dumps.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines. All methods do nothing on nil
// writer so tracing could be switched off by passing nil.
type TreeWriter struct {
	b strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	if tw == nil {
		return ""
	}
	return tw.b.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.b.WriteString("  ")
	}
}

// Line writes formatted line at requested depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	if tw == nil {
		return
	}
	tw.indent(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// Field writes "label: value" line, non empty value is quoted so leading and
// trailing spaces stay visible.
func (tw *TreeWriter) Field(depth int, label, value string) {
	if tw == nil {
		return
	}
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": ")
	if value != "" {
		value = strconv.Quote(value)
	}
	tw.b.WriteString(value)
	tw.b.WriteByte('\n')
}

// List writes "label: [item item ...]" line.
func (tw *TreeWriter) List(depth int, label string, items []string) {
	if tw == nil {
		return
	}
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteString(": [")
	tw.b.WriteString(strings.Join(items, " "))
	tw.b.WriteString("]\n")
}
