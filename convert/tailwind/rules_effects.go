package tailwind

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"css2tw/css"
)

var blendModes = []string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge",
	"color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue",
	"saturation", "color", "luminosity", "plus-darker", "plus-lighter",
}

var effectRules = ruleTable{
	"opacity":    opacity,
	"box-shadow": boxShadow,

	"filter":          filters(""),
	"backdrop-filter": filters("backdrop-"),

	"transform":        transform,
	"rotate":           func(v string) []string { return one(angleClass("rotate", rotateSteps, v)) },
	"scale":            scaleProperty,
	"translate":        translateProperty,
	"transform-origin": keywords(transformOrigins(), orValue("origin")),

	"transition":                 transition,
	"transition-property":        keywords(transitionProperties, orValue("transition")),
	"transition-duration":        func(v string) []string { return one(timeClass("duration", v)) },
	"transition-delay":           func(v string) []string { return one(timeClass("delay", v)) },
	"transition-timing-function": func(v string) []string { return one(easing(v)) },

	"animation": animation,

	"mix-blend-mode":        keywords(prefixed("mix-blend", blendModes, nil), orProperty("mix-blend-mode")),
	"background-blend-mode": keywords(prefixed("bg-blend", blendModes, nil), orProperty("background-blend-mode")),

	"will-change": keywords(map[string]string{
		"auto":            "will-change-auto",
		"scroll-position": "will-change-scroll",
		"contents":        "will-change-contents",
		"transform":       "will-change-transform",
	}, orValue("will-change")),
}

// opacity rounds value to whole percent, half away from zero, and looks it up
// in opacity steps.
func opacity(value string) []string {
	v := css.VarFallback(value)
	if f, unit, ok := parseNumber(v); ok && (unit == "" || unit == "%") {
		if unit == "" {
			f *= 100
		}
		if n := int(math.Round(f)); slices.Contains(opacitySteps, n) {
			return one(join("opacity", strconv.Itoa(n)))
		}
	}
	return one(arbitraryValue("opacity", v))
}

// normalizeList collapses blanks in every element of comma separated list.
func normalizeList(value string) string {
	list := css.SplitList(value)
	for i, item := range list {
		list[i] = strings.Join(css.SplitValues(item), " ")
	}
	return strings.Join(list, ", ")
}

func boxShadow(value string) []string {
	v := css.VarFallback(value)
	if class, ok := shadowPresets[strings.ToLower(normalizeList(v))]; ok {
		return one(class)
	}
	return one(arbitraryValue("shadow", value))
}

// angle parses angle in degrees, bare zero is accepted.
func angle(value string) (int, bool) {
	f, unit, ok := parseNumber(css.VarFallback(value))
	if !ok || unit != "deg" && !(unit == "" && f == 0) {
		return 0, false
	}
	return integral(f)
}

func angleClass(prefix string, steps []int, value string) string {
	if n, ok := angle(value); ok {
		if class, ok := stepClass(prefix, n, steps); ok {
			return class
		}
	}
	return arbitraryValue(prefix, css.VarFallback(value))
}

// percentClass handles filter and scale values given as number or percent.
func percentClass(prefix string, steps []int, value string) string {
	if n, ok := percentage(css.VarFallback(value)); ok {
		if class, ok := stepClass(prefix, n, steps); ok {
			return class
		}
	}
	return arbitraryValue(prefix, css.VarFallback(value))
}

// toggleClass handles grayscale, invert and sepia: full amount is the bare
// class, zero is "-0".
func toggleClass(prefix, value string) string {
	if value == "" {
		return prefix
	}
	n, ok := percentage(css.VarFallback(value))
	switch {
	case ok && n == 100:
		return prefix
	case ok && n == 0:
		return prefix + "-0"
	}
	return arbitraryValue(prefix, css.VarFallback(value))
}

func filterClass(prefix, name, args string) (string, bool) {
	switch name {
	case "blur":
		v := css.VarFallback(args)
		if step, ok := blurScale[strings.ToLower(v)]; ok {
			return join(prefix+"blur", step), true
		}
		return arbitraryValue(prefix+"blur", v), true
	case "brightness":
		return percentClass(prefix+"brightness", brightnessSteps, args), true
	case "contrast":
		return percentClass(prefix+"contrast", contrastSteps, args), true
	case "saturate":
		return percentClass(prefix+"saturate", saturateSteps, args), true
	case "opacity":
		if prefix == "" {
			return "", false
		}
		return percentClass(prefix+"opacity", opacitySteps, args), true
	case "hue-rotate":
		return angleClass(prefix+"hue-rotate", hueRotateSteps, args), true
	case "grayscale", "invert", "sepia":
		return toggleClass(prefix+name, args), true
	case "drop-shadow":
		if prefix != "" {
			return "", false
		}
		return arbitraryValue("drop-shadow", args), true
	}
	return "", false
}

// filters converts filter and backdrop-filter function lists, any unknown
// function turns the whole value into arbitrary property.
func filters(prefix string) rule {
	property := prefix + "filter"
	return func(value string) []string {
		if strings.ToLower(strings.TrimSpace(value)) == "none" {
			return one(prefix + "filter-none")
		}
		parts := css.SplitValues(value)
		classes := make([]string, 0, len(parts))
		for _, part := range parts {
			name, args, ok := css.ParseFunction(part)
			if !ok {
				return one(arbitraryProperty(property, value))
			}
			class, ok := filterClass(prefix, name, args)
			if !ok {
				return one(arbitraryProperty(property, value))
			}
			classes = append(classes, class)
		}
		return classes
	}
}

func translateClass(prefix, value string) string {
	return scaleClass(prefix, sizeStep, value)
}

func scaleClasses(args []string) []string {
	switch {
	case len(args) == 1 || len(args) == 2 && args[0] == args[1]:
		return one(percentClass("scale", scaleSteps, args[0]))
	case len(args) == 2:
		return []string{percentClass("scale-x", scaleSteps, args[0]), percentClass("scale-y", scaleSteps, args[1])}
	}
	return nil
}

func transformFunction(name string, args []string) []string {
	switch {
	case name == "translate" && len(args) == 1:
		return one(translateClass("translate-x", args[0]))
	case name == "translate" && len(args) == 2:
		return []string{translateClass("translate-x", args[0]), translateClass("translate-y", args[1])}
	case name == "translatex" && len(args) == 1:
		return one(translateClass("translate-x", args[0]))
	case name == "translatey" && len(args) == 1:
		return one(translateClass("translate-y", args[0]))
	case name == "rotate" && len(args) == 1:
		return one(angleClass("rotate", rotateSteps, args[0]))
	case name == "scale":
		return scaleClasses(args)
	case name == "scalex" && len(args) == 1:
		return one(percentClass("scale-x", scaleSteps, args[0]))
	case name == "scaley" && len(args) == 1:
		return one(percentClass("scale-y", scaleSteps, args[0]))
	case name == "skewx" && len(args) == 1:
		return one(angleClass("skew-x", skewSteps, args[0]))
	case name == "skewy" && len(args) == 1:
		return one(angleClass("skew-y", skewSteps, args[0]))
	}
	return nil
}

func transform(value string) []string {
	if strings.ToLower(strings.TrimSpace(value)) == "none" {
		return one("transform-none")
	}
	parts := css.SplitValues(value)
	classes := make([]string, 0, len(parts))
	for _, part := range parts {
		name, args, ok := css.ParseFunction(part)
		if !ok {
			return one(arbitraryProperty("transform", value))
		}
		converted := transformFunction(name, css.SplitList(args))
		if converted == nil {
			return one(arbitraryProperty("transform", value))
		}
		classes = append(classes, converted...)
	}
	return classes
}

func scaleProperty(value string) []string {
	if strings.ToLower(strings.TrimSpace(value)) == "none" {
		return one(arbitraryProperty("scale", "none"))
	}
	if classes := scaleClasses(css.SplitValues(value)); classes != nil {
		return classes
	}
	return one(arbitraryProperty("scale", value))
}

func translateProperty(value string) []string {
	parts := css.SplitValues(value)
	switch len(parts) {
	case 1:
		return one(translateClass("translate-x", parts[0]))
	case 2:
		return []string{translateClass("translate-x", parts[0]), translateClass("translate-y", parts[1])}
	}
	return one(arbitraryProperty("translate", value))
}

func transformOrigins() map[string]string {
	table := prefixed("origin", []string{"center", "top", "right", "bottom", "left"}, nil)
	for _, v := range []string{"top", "bottom"} {
		for _, h := range []string{"left", "right"} {
			table[v+" "+h] = "origin-" + v + "-" + h
			table[h+" "+v] = "origin-" + v + "-" + h
		}
	}
	table["center center"] = "origin-center"
	table["50% 50%"] = "origin-center"
	return table
}

var transitionProperties = map[string]string{
	"none":             "transition-none",
	"all":              "transition-all",
	"opacity":          "transition-opacity",
	"box-shadow":       "transition-shadow",
	"transform":        "transition-transform",
	"color":            "transition-colors",
	"background-color": "transition-colors",
	"border-color":     "transition-colors",
}

var easings = map[string]string{
	"linear":                       "ease-linear",
	"ease-in":                      "ease-in",
	"ease-out":                     "ease-out",
	"ease-in-out":                  "ease-in-out",
	"cubic-bezier(0.4, 0, 1, 1)":   "ease-in",
	"cubic-bezier(0, 0, 0.2, 1)":   "ease-out",
	"cubic-bezier(0.4, 0, 0.2, 1)": "ease-in-out",
}

func isEasing(value string) bool {
	lower := strings.ToLower(value)
	if _, ok := easings[lower]; ok {
		return true
	}
	return lower == "ease" || strings.HasPrefix(lower, "cubic-bezier(") || strings.HasPrefix(lower, "steps(")
}

func easing(value string) string {
	v := strings.ToLower(strings.TrimSpace(css.VarFallback(value)))
	if class, ok := easings[v]; ok {
		return class
	}
	return arbitraryValue("ease", v)
}

// duration parses time value into milliseconds.
func duration(value string) (int, bool) {
	f, unit, ok := parseNumber(css.VarFallback(value))
	if !ok {
		return 0, false
	}
	switch unit {
	case "s":
		f *= 1000
	case "ms":
	case "":
		if f != 0 {
			return 0, false
		}
	default:
		return 0, false
	}
	return integral(f)
}

func timeClass(prefix, value string) string {
	if n, ok := duration(value); ok && n >= 0 {
		if class, ok := stepClass(prefix, n, durationSteps); ok {
			return class
		}
	}
	return arbitraryValue(prefix, css.VarFallback(value))
}

// transition converts single transition shorthand: property, duration,
// timing function and delay. Multiple transitions are kept as arbitrary
// property.
func transition(value string) []string {
	v := strings.TrimSpace(value)
	if strings.ToLower(v) == "none" {
		return one("transition-none")
	}
	if len(css.SplitList(v)) != 1 {
		return one(arbitraryProperty("transition", v))
	}
	var property, dur, delay, timing string
	for _, part := range css.SplitValues(v) {
		switch _, isTime := duration(part); {
		case isTime && dur == "":
			dur = part
		case isTime && delay == "":
			delay = part
		case isEasing(part) && timing == "":
			timing = part
		case property == "":
			property = part
		default:
			return one(arbitraryProperty("transition", v))
		}
	}
	classes := make([]string, 0, 4)
	if property == "" {
		classes = append(classes, "transition-all")
	} else {
		classes = append(classes, keywords(transitionProperties, orValue("transition"))(property)...)
	}
	if dur != "" {
		classes = append(classes, timeClass("duration", dur))
	}
	if timing != "" {
		classes = append(classes, easing(timing))
	}
	if delay != "" {
		classes = append(classes, timeClass("delay", delay))
	}
	return classes
}

func animation(value string) []string {
	v := strings.TrimSpace(value)
	parts := css.SplitValues(strings.ToLower(v))
	if len(parts) == 0 {
		return one(arbitraryProperty("animation", v))
	}
	switch parts[0] {
	case "none":
		return one("animate-none")
	case "spin", "ping", "pulse", "bounce":
		return one("animate-" + parts[0])
	}
	return one(arbitraryValue("animate", v))
}
