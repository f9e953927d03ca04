package tailwind

import (
	"strconv"
	"strings"

	"css2tw/css"
)

var structureRules = ruleTable{
	"table-layout": keywords(map[string]string{
		"auto":  "table-auto",
		"fixed": "table-fixed",
	}, orProperty("table-layout")),

	"border-collapse": keywords(map[string]string{
		"collapse": "border-collapse",
		"separate": "border-separate",
	}, orProperty("border-collapse")),

	"border-spacing": borderSpacing,

	"caption-side": keywords(prefixed("caption", []string{"top", "bottom"}, nil), orProperty("caption-side")),

	"content": func(value string) []string {
		if strings.ToLower(strings.TrimSpace(value)) == "none" {
			return one("content-none")
		}
		return one(arbitraryValue("content", value))
	},

	"columns": columns,

	"break-inside": keywords(prefixed("break-inside", []string{"auto", "avoid", "avoid-page", "avoid-column"}, nil),
		orProperty("break-inside")),

	"box-decoration-break": keywords(prefixed("box-decoration", []string{"clone", "slice"}, nil),
		orProperty("box-decoration-break")),

	"appearance": keywords(prefixed("appearance", []string{"none", "auto"}, nil), orProperty("appearance")),

	"scroll-behavior": keywords(prefixed("scroll", []string{"auto", "smooth"}, nil), orProperty("scroll-behavior")),

	"touch-action": keywords(prefixed("touch", []string{"auto", "none", "pan-x", "pan-y", "manipulation", "pinch-zoom"}, nil),
		orProperty("touch-action")),
}

func borderSpacing(value string) []string {
	parts := css.SplitValues(value)
	switch len(parts) {
	case 1:
		return one(scaleClass("border-spacing", spacingStep, parts[0]))
	case 2:
		return []string{
			scaleClass("border-spacing-x", spacingStep, parts[0]),
			scaleClass("border-spacing-y", spacingStep, parts[1]),
		}
	}
	return one(arbitraryValue("border-spacing", value))
}

var columnWidths = map[string]string{
	"auto":  "auto",
	"16rem": "3xs",
	"18rem": "2xs",
	"20rem": "xs",
	"24rem": "sm",
	"28rem": "md",
	"32rem": "lg",
	"36rem": "xl",
	"42rem": "2xl",
	"48rem": "3xl",
	"56rem": "4xl",
	"64rem": "5xl",
	"72rem": "6xl",
	"80rem": "7xl",
}

func columns(value string) []string {
	v := strings.ToLower(css.VarFallback(value))
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 12 {
		return one("columns-" + v)
	}
	if step, ok := columnWidths[v]; ok {
		return one("columns-" + step)
	}
	return one(arbitraryValue("columns", v))
}
