package tailwind

import (
	"strings"

	"css2tw/css"
)

var borderStyles = map[string]bool{
	"solid":  true,
	"dashed": true,
	"dotted": true,
	"double": true,
	"hidden": true,
	"none":   true,
}

var boxRules = ruleTable{
	"padding":        sides(boxPrefixes("p"), spacingClass),
	"padding-top":    spacingRule("pt"),
	"padding-right":  spacingRule("pr"),
	"padding-bottom": spacingRule("pb"),
	"padding-left":   spacingRule("pl"),

	"padding-inline":       logical("px", "ps", "pe"),
	"padding-inline-start": spacingRule("ps"),
	"padding-inline-end":   spacingRule("pe"),
	"padding-block":        logical("py", "pt", "pb"),
	"padding-block-start":  spacingRule("pt"),
	"padding-block-end":    spacingRule("pb"),

	"margin":        sides(boxPrefixes("m"), spacingClass),
	"margin-top":    spacingRule("mt"),
	"margin-right":  spacingRule("mr"),
	"margin-bottom": spacingRule("mb"),
	"margin-left":   spacingRule("ml"),

	"margin-inline":       logical("mx", "ms", "me"),
	"margin-inline-start": spacingRule("ms"),
	"margin-inline-end":   spacingRule("me"),
	"margin-block":        logical("my", "mt", "mb"),
	"margin-block-start":  spacingRule("mt"),
	"margin-block-end":    spacingRule("mb"),

	"border":        borderShorthand("border", "border"),
	"border-top":    borderShorthand("border-t", "border-top"),
	"border-right":  borderShorthand("border-r", "border-right"),
	"border-bottom": borderShorthand("border-b", "border-bottom"),
	"border-left":   borderShorthand("border-l", "border-left"),

	"border-width":        sides(dashedPrefixes("border"), borderWidthClass),
	"border-top-width":    borderWidthRule("border-t"),
	"border-right-width":  borderWidthRule("border-r"),
	"border-bottom-width": borderWidthRule("border-b"),
	"border-left-width":   borderWidthRule("border-l"),

	"border-style":        borderStyle,
	"border-top-style":    keywords(nil, orProperty("border-top-style")),
	"border-right-style":  keywords(nil, orProperty("border-right-style")),
	"border-bottom-style": keywords(nil, orProperty("border-bottom-style")),
	"border-left-style":   keywords(nil, orProperty("border-left-style")),

	"border-color":        sides(dashedPrefixes("border"), colorClass),
	"border-top-color":    colorRule("border-t"),
	"border-right-color":  colorRule("border-r"),
	"border-bottom-color": colorRule("border-b"),
	"border-left-color":   colorRule("border-l"),

	"border-radius":              borderRadius,
	"border-top-left-radius":     radiusRule("rounded-tl"),
	"border-top-right-radius":    radiusRule("rounded-tr"),
	"border-bottom-right-radius": radiusRule("rounded-br"),
	"border-bottom-left-radius":  radiusRule("rounded-bl"),
	"border-start-start-radius":  radiusRule("rounded-ss"),
	"border-start-end-radius":    radiusRule("rounded-se"),
	"border-end-end-radius":      radiusRule("rounded-ee"),
	"border-end-start-radius":    radiusRule("rounded-es"),

	"outline":        outline,
	"outline-width":  scaled("outline", fromTable(offsetScale)),
	"outline-style":  outlineStyle,
	"outline-color":  colorRule("outline"),
	"outline-offset": scaled("outline-offset", fromTable(offsetScale)),
}

func spacingClass(prefix, value string) string {
	return scaleClass(prefix, spacingStep, value)
}

func spacingRule(prefix string) rule {
	return scaled(prefix, spacingStep)
}

// logical converts *-inline and *-block properties: one value applies to the
// whole axis, two values are start and end.
func logical(axis, start, end string) rule {
	return func(value string) []string {
		parts := css.SplitValues(value)
		switch len(parts) {
		case 1:
			return one(spacingClass(axis, parts[0]))
		case 2:
			return []string{spacingClass(start, parts[0]), spacingClass(end, parts[1])}
		}
		return one(arbitraryValue(axis, value))
	}
}

func borderWidthClass(prefix, value string) string {
	v := css.VarFallback(value)
	if suffix, ok := borderWidths[strings.ToLower(v)]; ok {
		return prefix + suffix
	}
	return arbitraryValue(prefix, v)
}

func borderWidthRule(prefix string) rule {
	return func(value string) []string {
		return one(borderWidthClass(prefix, value))
	}
}

func borderStyle(value string) []string {
	v := strings.ToLower(css.VarFallback(value))
	if borderStyles[v] {
		return one("border-" + v)
	}
	return one(arbitraryProperty("border-style", value))
}

// borderShorthand converts "border" and "border-<side>" shorthands. Every
// component is classified as style keyword, width or color. Tailwind has no
// per-side border style, so side styles become arbitrary properties.
func borderShorthand(prefix, property string) rule {
	return func(value string) []string {
		parts := css.SplitValues(value)
		if len(parts) == 1 {
			switch strings.ToLower(css.VarFallback(parts[0])) {
			case "none", "0", "0px":
				return one(prefix + "-0")
			}
		}
		classes := make([]string, 0, len(parts))
		for _, part := range parts {
			lower := strings.ToLower(css.VarFallback(part))
			switch {
			case borderStyles[lower] && prefix == "border":
				classes = append(classes, "border-"+lower)
			case borderStyles[lower]:
				classes = append(classes, arbitraryProperty(property+"-style", lower))
			case isLength(part):
				classes = append(classes, borderWidthClass(prefix, part))
			default:
				classes = append(classes, colorClass(prefix, part))
			}
		}
		return classes
	}
}

func radiusClass(prefix, value string) string {
	v := css.VarFallback(value)
	if suffix, ok := radiusScale[strings.ToLower(v)]; ok {
		return join(prefix, suffix)
	}
	return arbitraryValue(prefix, v)
}

func radiusRule(prefix string) rule {
	return func(value string) []string {
		return one(radiusClass(prefix, value))
	}
}

// borderRadius expands corner shorthand following CSS: values are assigned
// to top-left, top-right, bottom-right and bottom-left corners, missing
// corners copy their opposite. Elliptical radii are kept as arbitrary value.
func borderRadius(value string) []string {
	if strings.Contains(css.VarFallback(value), "/") {
		return one(arbitraryValue("rounded", value))
	}
	parts := css.SplitValues(value)
	var tl, tr, br, bl string
	switch len(parts) {
	case 1:
		return one(radiusClass("rounded", parts[0]))
	case 2:
		tl, tr, br, bl = parts[0], parts[1], parts[0], parts[1]
	case 3:
		tl, tr, br, bl = parts[0], parts[1], parts[2], parts[1]
	case 4:
		tl, tr, br, bl = parts[0], parts[1], parts[2], parts[3]
	default:
		return one(arbitraryValue("rounded", value))
	}
	return []string{
		radiusClass("rounded-tl", tl),
		radiusClass("rounded-tr", tr),
		radiusClass("rounded-br", br),
		radiusClass("rounded-bl", bl),
	}
}

func outlineStyleClass(style string) string {
	switch style {
	case "solid":
		return "outline"
	case "none", "hidden":
		return "outline-none"
	}
	return "outline-" + style
}

func outlineStyle(value string) []string {
	v := strings.ToLower(css.VarFallback(value))
	if borderStyles[v] {
		return one(outlineStyleClass(v))
	}
	return one(arbitraryProperty("outline-style", value))
}

func outline(value string) []string {
	parts := css.SplitValues(value)
	if len(parts) == 1 {
		switch strings.ToLower(css.VarFallback(parts[0])) {
		case "none":
			return one("outline-none")
		case "0", "0px":
			return one("outline-0")
		}
	}
	classes := make([]string, 0, len(parts))
	for _, part := range parts {
		lower := strings.ToLower(css.VarFallback(part))
		switch {
		case borderStyles[lower]:
			classes = append(classes, outlineStyleClass(lower))
		case isLength(part):
			classes = append(classes, scaleClass("outline", fromTable(offsetScale), part))
		default:
			classes = append(classes, colorClass("outline", part))
		}
	}
	return classes
}
