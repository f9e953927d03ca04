package tailwind

import (
	"strconv"
	"strings"

	"css2tw/css"
)

// typographyProperties are replaced as a whole by the font comment class.
var typographyProperties = map[string]bool{
	"font-family":    true,
	"font-size":      true,
	"font-weight":    true,
	"line-height":    true,
	"letter-spacing": true,
	"font-style":     true,
}

var typographyRules = ruleTable{
	"font-family":    suppressed,
	"line-height":    suppressed,
	"letter-spacing": suppressed,

	"font-size": scaled("text", fromTable(fontSizeScale)),
	"font-weight": func(value string) []string {
		v := strings.ToLower(css.VarFallback(value))
		if w, ok := fontWeights[v]; ok {
			return one("font-" + w)
		}
		return one(arbitraryValue("font", v))
	},
	"font-style": keywords(map[string]string{
		"italic":  "italic",
		"oblique": "italic",
		"normal":  "not-italic",
	}, orProperty("font-style")),

	"font-variant-numeric": keywords(map[string]string{
		"normal":             "normal-nums",
		"ordinal":            "ordinal",
		"slashed-zero":       "slashed-zero",
		"lining-nums":        "lining-nums",
		"oldstyle-nums":      "oldstyle-nums",
		"proportional-nums":  "proportional-nums",
		"tabular-nums":       "tabular-nums",
		"diagonal-fractions": "diagonal-fractions",
		"stacked-fractions":  "stacked-fractions",
	}, orProperty("font-variant-numeric")),

	"-webkit-font-smoothing": keywords(map[string]string{
		"antialiased": "antialiased",
		"auto":        "subpixel-antialiased",
	}, orProperty("-webkit-font-smoothing")),

	"text-align": keywords(prefixed("text", []string{"left", "center", "right", "justify", "start", "end"}, nil),
		orProperty("text-align")),

	"text-transform": keywords(map[string]string{
		"uppercase":  "uppercase",
		"lowercase":  "lowercase",
		"capitalize": "capitalize",
		"none":       "normal-case",
	}, orProperty("text-transform")),

	"text-decoration":      textDecoration,
	"text-decoration-line": keywords(decorationLines, orProperty("text-decoration-line")),
	"text-decoration-style": keywords(prefixed("decoration", []string{"solid", "double", "dotted", "dashed", "wavy"}, nil),
		orProperty("text-decoration-style")),
	"text-decoration-thickness": scaled("decoration", decorationThickness),
	"text-underline-offset": scaled("underline-offset", chain(fromTable(offsetScale),
		fromTable(map[string]string{"auto": "auto"}))),

	"text-overflow": keywords(map[string]string{
		"ellipsis": "text-ellipsis",
		"clip":     "text-clip",
	}, orProperty("text-overflow")),

	"text-wrap": keywords(prefixed("text", []string{"wrap", "nowrap", "balance", "pretty"}, nil),
		orProperty("text-wrap")),

	"white-space": keywords(prefixed("whitespace", []string{"normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"}, nil),
		orProperty("white-space")),

	"word-break": keywords(map[string]string{
		"normal":    "break-normal",
		"break-all": "break-all",
		"keep-all":  "break-keep",
	}, orProperty("word-break")),

	"overflow-wrap": keywords(map[string]string{
		"break-word": "break-words",
		"anywhere":   "break-words",
	}, orProperty("overflow-wrap")),

	"hyphens": keywords(prefixed("hyphens", []string{"none", "manual", "auto"}, nil), orProperty("hyphens")),

	"vertical-align": keywords(prefixed("align", []string{
		"baseline", "top", "middle", "bottom", "text-top", "text-bottom", "sub", "super",
	}, nil), orValue("align")),

	"text-indent": scaled("indent", spacingStep),

	"line-clamp":         lineClamp,
	"-webkit-line-clamp": lineClamp,

	"list-style":          listStyle,
	"list-style-type":     keywords(prefixed("list", []string{"none", "disc", "decimal"}, nil), orValue("list")),
	"list-style-position": keywords(prefixed("list", []string{"inside", "outside"}, nil), orProperty("list-style-position")),
}

var decorationThickness = chain(fromTable(offsetScale),
	fromTable(map[string]string{"auto": "auto", "from-font": "from-font"}))

var decorationLines = map[string]string{
	"underline":    "underline",
	"overline":     "overline",
	"line-through": "line-through",
	"none":         "no-underline",
}

// textDecoration converts shorthand of line, style, color and thickness.
func textDecoration(value string) []string {
	classes := make([]string, 0, 2)
	for _, part := range css.SplitValues(value) {
		lower := strings.ToLower(css.VarFallback(part))
		switch {
		case decorationLines[lower] != "":
			classes = append(classes, decorationLines[lower])
		case lower == "solid" || lower == "double" || lower == "dotted" || lower == "dashed" || lower == "wavy":
			classes = append(classes, "decoration-"+lower)
		case isLength(part) || lower == "auto" || lower == "from-font":
			classes = append(classes, scaleClass("decoration", decorationThickness, part))
		default:
			classes = append(classes, colorClass("decoration", part))
		}
	}
	if len(classes) == 0 {
		return one(arbitraryProperty("text-decoration", value))
	}
	return classes
}

func lineClamp(value string) []string {
	v := strings.ToLower(css.VarFallback(value))
	if v == "none" {
		return one("line-clamp-none")
	}
	if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= 6 {
		return one("line-clamp-" + v)
	}
	return one(arbitraryValue("line-clamp", v))
}

func listStyle(value string) []string {
	classes := make([]string, 0, 2)
	for _, part := range css.SplitValues(strings.ToLower(value)) {
		switch part {
		case "none", "disc", "decimal", "inside", "outside":
			classes = append(classes, "list-"+part)
		default:
			return one(arbitraryProperty("list-style", value))
		}
	}
	if len(classes) == 0 {
		return one(arbitraryProperty("list-style", value))
	}
	return classes
}
