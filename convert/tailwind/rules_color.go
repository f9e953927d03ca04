package tailwind

import (
	"strings"

	"css2tw/css"
)

var colorKeywords = map[string]string{
	"currentcolor": "current",
	"transparent":  "transparent",
	"inherit":      "inherit",
	"black":        "black",
	"white":        "white",
}

// colorName converts color value to class suffix. Custom property references
// denote design tokens and resolve to their names, literal colors become
// arbitrary values.
func colorName(value string) string {
	v := strings.TrimSpace(value)
	if css.HasVar(v) {
		if name := css.VarClassName(v); isIdent(name) {
			return name
		}
		v = css.VarFallback(v)
	}
	lower := strings.ToLower(v)
	if name, ok := colorKeywords[lower]; ok {
		return name
	}
	if isIdent(lower) {
		return lower
	}
	return "[" + v + "]"
}

// isIdent returns true for values made of lowercase letters, digits and
// dashes starting with a letter.
func isIdent(s string) bool {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

func colorClass(prefix, value string) string {
	return prefix + "-" + colorName(value)
}

func colorRule(prefix string) rule {
	return func(value string) []string {
		return one(colorClass(prefix, value))
	}
}

// colorOr is colorRule with keyword exceptions checked first.
func colorOr(prefix string, table map[string]string) rule {
	return func(value string) []string {
		if class, ok := table[strings.ToLower(value)]; ok {
			return one(class)
		}
		return one(colorClass(prefix, value))
	}
}

var colorRules = ruleTable{
	"color":            colorRule("text"),
	"background-color": colorRule("bg"),
	"background":       background,
	"background-image": backgroundImage,

	"background-size": keywords(prefixed("bg", []string{"auto", "cover", "contain"}, nil),
		func(v string) string { return arbitraryValue("bg", "length:"+v) }),
	"background-position": keywords(positionKeywords("bg"),
		func(v string) string { return arbitraryValue("bg", "position:"+v) }),
	"background-repeat": keywords(map[string]string{
		"repeat":    "bg-repeat",
		"no-repeat": "bg-no-repeat",
		"repeat-x":  "bg-repeat-x",
		"repeat-y":  "bg-repeat-y",
		"round":     "bg-repeat-round",
		"space":     "bg-repeat-space",
	}, orProperty("background-repeat")),
	"background-attachment": keywords(prefixed("bg", []string{"fixed", "local", "scroll"}, nil),
		orProperty("background-attachment")),
	"background-clip": keywords(map[string]string{
		"border-box":  "bg-clip-border",
		"padding-box": "bg-clip-padding",
		"content-box": "bg-clip-content",
		"text":        "bg-clip-text",
	}, orProperty("background-clip")),
	"-webkit-background-clip": keywords(map[string]string{
		"text": "bg-clip-text",
	}, orProperty("-webkit-background-clip")),
	"background-origin": keywords(map[string]string{
		"border-box":  "bg-origin-border",
		"padding-box": "bg-origin-padding",
		"content-box": "bg-origin-content",
	}, orProperty("background-origin")),

	"fill":   colorOr("fill", map[string]string{"none": "fill-none"}),
	"stroke": colorOr("stroke", map[string]string{"none": "stroke-none"}),
	"stroke-width": keywords(map[string]string{
		"0":   "stroke-0",
		"1":   "stroke-1",
		"1px": "stroke-1",
		"2":   "stroke-2",
		"2px": "stroke-2",
	}, orValue("stroke")),

	"accent-color":          colorOr("accent", map[string]string{"auto": "accent-auto"}),
	"caret-color":           colorRule("caret"),
	"text-decoration-color": colorRule("decoration"),
}

func background(value string) []string {
	v := strings.TrimSpace(value)
	switch lower := strings.ToLower(v); {
	case lower == "none":
		return one("bg-none")
	case strings.Contains(lower, "gradient("):
		return gradient(v)
	case strings.HasPrefix(lower, "url("):
		return one(arbitraryValue("bg", v))
	}
	if len(css.SplitValues(v)) > 1 || len(css.SplitList(v)) > 1 {
		return one(arbitraryValue("bg", v))
	}
	return one(colorClass("bg", v))
}

func backgroundImage(value string) []string {
	v := strings.TrimSpace(value)
	switch lower := strings.ToLower(v); {
	case lower == "none":
		return one("bg-none")
	case strings.Contains(lower, "gradient("):
		return gradient(v)
	}
	return one(arbitraryValue("bg", v))
}

var gradientDirections = map[string]string{
	"to top":          "t",
	"to top right":    "tr",
	"to right top":    "tr",
	"to right":        "r",
	"to bottom right": "br",
	"to right bottom": "br",
	"to bottom":       "b",
	"to bottom left":  "bl",
	"to left bottom":  "bl",
	"to left":         "l",
	"to top left":     "tl",
	"to left top":     "tl",
	"0deg":            "t",
	"45deg":           "tr",
	"90deg":           "r",
	"135deg":          "br",
	"180deg":          "b",
	"225deg":          "bl",
	"270deg":          "l",
	"315deg":          "tl",
	"360deg":          "t",
}

// gradient converts linear-gradient with two or three color stops into
// direction and from/via/to classes. Everything else is kept as arbitrary
// background image.
func gradient(value string) []string {
	fallback := one(arbitraryValue("bg", value))

	name, args, ok := css.ParseFunction(value)
	if !ok || name != "linear-gradient" {
		return fallback
	}
	list := css.SplitList(args)
	if len(list) == 0 {
		return fallback
	}

	dir := "b"
	first := strings.Join(css.SplitValues(strings.ToLower(list[0])), " ")
	if d, ok := gradientDirections[first]; ok {
		dir = d
		list = list[1:]
	} else if strings.HasPrefix(first, "to ") || strings.HasSuffix(first, "deg") || strings.HasSuffix(first, "turn") {
		return fallback
	}

	var stops []string
	switch len(list) {
	case 2:
		stops = []string{"from", "to"}
	case 3:
		stops = []string{"from", "via", "to"}
	default:
		return fallback
	}

	classes := []string{"bg-gradient-to-" + dir}
	for i, stop := range list {
		parts := css.SplitValues(stop)
		if len(parts) > 2 {
			return fallback
		}
		classes = append(classes, colorClass(stops[i], parts[0]))
		if len(parts) == 2 {
			if pos, ok := stopPosition(stops[i], parts[1]); ok {
				classes = append(classes, pos)
			}
		}
	}
	return classes
}

// stopPosition returns position class for gradient stop unless position is
// the default one.
func stopPosition(stop, position string) (string, bool) {
	p := css.VarFallback(position)
	switch {
	case stop == "from" && (p == "0%" || p == "0"):
		return "", false
	case stop == "to" && p == "100%":
		return "", false
	case strings.HasSuffix(p, "%"):
		if n, ok := percentage(p); ok && n%5 == 0 && n >= 0 && n <= 100 {
			return stop + "-" + p, true
		}
	}
	return arbitraryValue(stop, p), true
}
