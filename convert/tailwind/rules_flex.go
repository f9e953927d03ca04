package tailwind

import (
	"regexp"
	"strconv"
	"strings"

	"css2tw/css"
)

// alignment values shared by justify-*, align-* and place-* properties.
var alignments = map[string]string{
	"flex-start":    "start",
	"start":         "start",
	"self-start":    "start",
	"center":        "center",
	"flex-end":      "end",
	"end":           "end",
	"self-end":      "end",
	"space-between": "between",
	"space-around":  "around",
	"space-evenly":  "evenly",
	"stretch":       "stretch",
	"baseline":      "baseline",
	"normal":        "normal",
	"auto":          "auto",
}

// aligned returns rule mapping alignment keywords allowed for property to
// "prefix-alignment".
func aligned(prefix string, allowed ...string) rule {
	table := make(map[string]string)
	for value, short := range alignments {
		for _, a := range allowed {
			if a == short {
				table[value] = prefix + "-" + short
			}
		}
	}
	return keywords(table, orValue(prefix))
}

var flexGridRules = ruleTable{
	"justify-content": aligned("justify", "start", "center", "end", "between", "around", "evenly", "stretch", "normal"),
	"justify-items":   aligned("justify-items", "start", "center", "end", "stretch"),
	"justify-self":    aligned("justify-self", "auto", "start", "center", "end", "stretch"),
	"align-items":     aligned("items", "start", "center", "end", "stretch", "baseline"),
	"align-content":   aligned("content", "start", "center", "end", "between", "around", "evenly", "stretch", "baseline", "normal"),
	"align-self":      aligned("self", "auto", "start", "center", "end", "stretch", "baseline"),
	"place-content":   aligned("place-content", "start", "center", "end", "between", "around", "evenly", "stretch", "baseline"),
	"place-items":     aligned("place-items", "start", "center", "end", "stretch", "baseline"),
	"place-self":      aligned("place-self", "auto", "start", "center", "end", "stretch"),

	"flex-direction": keywords(map[string]string{
		"row":            "flex-row",
		"row-reverse":    "flex-row-reverse",
		"column":         "flex-col",
		"column-reverse": "flex-col-reverse",
	}, orValue("flex")),

	"flex-wrap": keywords(map[string]string{
		"nowrap":       "flex-nowrap",
		"wrap":         "flex-wrap",
		"wrap-reverse": "flex-wrap-reverse",
	}, orValue("flex")),

	"flex": flex,

	"flex-grow": keywords(map[string]string{
		"0": "grow-0",
		"1": "grow",
	}, orValue("grow")),

	"flex-shrink": keywords(map[string]string{
		"0": "shrink-0",
		"1": "shrink",
	}, orValue("shrink")),

	"flex-basis": scaled("basis", sizeStep),

	"order": order,

	"gap":        gap,
	"row-gap":    scaled("gap-y", spacingStep),
	"column-gap": scaled("gap-x", spacingStep),

	"grid-template-columns": gridTemplate("grid-cols"),
	"grid-template-rows":    gridTemplate("grid-rows"),

	"grid-column":       gridLine("col"),
	"grid-column-start": gridEdge("col-start"),
	"grid-column-end":   gridEdge("col-end"),
	"grid-row":          gridLine("row"),
	"grid-row-start":    gridEdge("row-start"),
	"grid-row-end":      gridEdge("row-end"),

	"grid-auto-flow": keywords(map[string]string{
		"row":           "grid-flow-row",
		"column":        "grid-flow-col",
		"dense":         "grid-flow-dense",
		"row dense":     "grid-flow-row-dense",
		"column dense":  "grid-flow-col-dense",
		"dense row":     "grid-flow-row-dense",
		"dense column":  "grid-flow-col-dense",
	}, orProperty("grid-auto-flow")),

	"grid-auto-columns": gridAuto("auto-cols"),
	"grid-auto-rows":    gridAuto("auto-rows"),
}

var flexShorthands = map[string]string{
	"1":         "flex-1",
	"1 1 0%":    "flex-1",
	"1 1 0":     "flex-1",
	"1 1 0px":   "flex-1",
	"auto":      "flex-auto",
	"1 1 auto":  "flex-auto",
	"initial":   "flex-initial",
	"0 1 auto":  "flex-initial",
	"none":      "flex-none",
	"0 0 auto":  "flex-none",
}

func flex(value string) []string {
	v := strings.Join(css.SplitValues(strings.ToLower(css.VarFallback(value))), " ")
	if class, ok := flexShorthands[v]; ok {
		return one(class)
	}
	return one(arbitraryValue("flex", value))
}

func order(value string) []string {
	v := css.VarFallback(value)
	n, err := strconv.Atoi(v)
	if err != nil {
		return one(arbitraryValue("order", v))
	}
	switch {
	case n == 0:
		return one("order-none")
	case n <= -9999:
		return one("order-first")
	case n >= 9999:
		return one("order-last")
	}
	if class, ok := stepClass("order", n, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}); ok {
		return one(class)
	}
	return one(arbitraryValue("order", v))
}

// gap takes one value for both axes or two for rows and columns.
func gap(value string) []string {
	parts := css.SplitValues(value)
	switch len(parts) {
	case 1:
		return one(scaleClass("gap", spacingStep, parts[0]))
	case 2:
		return []string{
			scaleClass("gap-y", spacingStep, parts[0]),
			scaleClass("gap-x", spacingStep, parts[1]),
		}
	}
	return one(arbitraryValue("gap", value))
}

var gridRepeat = regexp.MustCompile(`^repeat\(\s*(\d+)\s*,\s*(?:minmax\(\s*0(?:px)?\s*,\s*1fr\s*\)|1fr)\s*\)$`)

func gridTemplate(prefix string) rule {
	return func(value string) []string {
		v := strings.ToLower(css.VarFallback(value))
		switch v {
		case "none", "subgrid":
			return one(prefix + "-" + v)
		}
		if m := gridRepeat.FindStringSubmatch(v); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 12 {
				return one(prefix + "-" + m[1])
			}
		}
		return one(arbitraryValue(prefix, value))
	}
}

// gridLine converts grid-column/grid-row shorthand.
func gridLine(prefix string) rule {
	return func(value string) []string {
		v := strings.ToLower(css.VarFallback(value))
		if v == "auto" {
			return one(prefix + "-auto")
		}
		start, end, hasEnd := strings.Cut(v, "/")
		start, end = strings.TrimSpace(start), strings.TrimSpace(end)
		if span, ok := spanOf(start); ok && (!hasEnd || end == start) {
			return one(prefix + "-span-" + span)
		}
		if hasEnd && start == "1" && end == "-1" {
			return one(prefix + "-span-full")
		}
		if hasEnd && isLine(start) && isLine(end) {
			return []string{prefix + "-start-" + start, prefix + "-end-" + end}
		}
		return one(arbitraryValue(prefix, value))
	}
}

func gridEdge(prefix string) rule {
	return func(value string) []string {
		v := strings.ToLower(css.VarFallback(value))
		if isLine(v) {
			return one(prefix + "-" + v)
		}
		return one(arbitraryValue(prefix, value))
	}
}

// spanOf returns N of "span N".
func spanOf(v string) (string, bool) {
	n, found := strings.CutPrefix(v, "span ")
	if !found {
		return "", false
	}
	n = strings.TrimSpace(n)
	if _, err := strconv.Atoi(n); err != nil {
		return "", false
	}
	return n, true
}

// isLine returns true for grid line numbers and auto.
func isLine(v string) bool {
	if v == "auto" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n != 0
}

func gridAuto(prefix string) rule {
	table := map[string]string{
		"auto":          prefix + "-auto",
		"min-content":   prefix + "-min",
		"max-content":   prefix + "-max",
		"minmax(0, 1fr)": prefix + "-fr",
		"minmax(0,1fr)":  prefix + "-fr",
	}
	return keywords(table, orValue(prefix))
}
