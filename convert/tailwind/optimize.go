package tailwind

import (
	"regexp"
	"slices"
)

// sideClass matches single side padding and margin classes: "pt-1", "ml-auto".
var sideClass = regexp.MustCompile(`^([pm])([tblr])-(.+)$`)

// spacingGroup collects sides of one spacing family sharing the same value.
type spacingGroup struct {
	family string
	value  string
	sides  []string
}

func (g *spacingGroup) has(side string) bool {
	return slices.Contains(g.sides, side)
}

func (g *spacingGroup) classes() []string {
	switch {
	case len(g.sides) == 2 && g.has("t") && g.has("b"):
		return one(g.family + "y-" + g.value)
	case len(g.sides) == 2 && g.has("l") && g.has("r"):
		return one(g.family + "x-" + g.value)
	case len(g.sides) == 4:
		return one(g.family + "-" + g.value)
	}
	out := make([]string, 0, len(g.sides))
	for _, side := range g.sides {
		out = append(out, g.family+side+"-"+g.value)
	}
	return out
}

// Optimize merges single side padding and margin classes having the same
// value into axis or uniform classes. Side classes are taken out of the list
// and grouped by family and value, groups are appended after the remaining
// classes in order of first appearance. Groups which cannot be merged keep
// their side classes.
func Optimize(classes []string) []string {
	var (
		out    = make([]string, 0, len(classes))
		groups []*spacingGroup
	)
	find := func(family, value string) *spacingGroup {
		for _, g := range groups {
			if g.family == family && g.value == value {
				return g
			}
		}
		g := &spacingGroup{family: family, value: value}
		groups = append(groups, g)
		return g
	}

	for _, class := range classes {
		m := sideClass.FindStringSubmatch(class)
		if m == nil {
			out = append(out, class)
			continue
		}
		g := find(m[1], m[3])
		if !g.has(m[2]) {
			g.sides = append(g.sides, m[2])
		}
	}
	for _, g := range groups {
		out = append(out, g.classes()...)
	}
	return out
}
