package tailwind

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"css2tw/css"
)

// rule converts value of a single CSS property into zero or more utility
// classes. Rules never fail, values they do not understand are carried over
// as arbitrary values.
type rule func(value string) []string

// ruleTable maps lowercase CSS property names to rules.
type ruleTable map[string]rule

// propertyRules is the complete set of supported properties.
var propertyRules = mergeRules(
	layoutRules,
	flexGridRules,
	boxRules,
	colorRules,
	typographyRules,
	effectRules,
	structureRules,
)

func mergeRules(tables ...ruleTable) ruleTable {
	all := make(ruleTable)
	for _, table := range tables {
		for name, r := range table {
			if _, exists := all[name]; exists {
				// static tables, should never happen
				panic(fmt.Sprintf("duplicate rule for property %q", name))
			}
			all[name] = r
		}
	}
	return all
}

// SupportedProperties returns the list of CSS properties with dedicated rules.
func SupportedProperties() []string {
	props := make([]string, 0, len(propertyRules))
	for name := range propertyRules {
		props = append(props, name)
	}
	slices.Sort(props)
	return props
}

// IsSupportedProperty returns true if property has dedicated rule.
func IsSupportedProperty(property string) bool {
	_, ok := propertyRules[strings.ToLower(property)]
	return ok
}

func one(class string) []string {
	return []string{class}
}

// suppressed is used for properties which never produce classes directly.
func suppressed(string) []string {
	return nil
}

// arbitraryProperty returns "[property:value]".
func arbitraryProperty(property, value string) string {
	return "[" + property + ":" + value + "]"
}

// arbitraryValue returns "prefix-[value]".
func arbitraryValue(prefix, value string) string {
	return prefix + "-[" + value + "]"
}

// join returns "prefix-step", or just prefix for empty step.
func join(prefix, step string) string {
	if step == "" {
		return prefix
	}
	return prefix + "-" + step
}

// negate puts minus in front of class: "translate-x-1" -> "-translate-x-1".
func negate(class string, neg bool) string {
	if neg {
		return "-" + class
	}
	return class
}

func orProperty(property string) func(string) string {
	return func(value string) string { return arbitraryProperty(property, value) }
}

func orValue(prefix string) func(string) string {
	return func(value string) string { return arbitraryValue(prefix, value) }
}

// keywords returns rule which looks value up in table, fallback produces
// class for unknown values.
func keywords(table map[string]string, fallback func(string) string) rule {
	return func(value string) []string {
		if class, ok := table[strings.ToLower(value)]; ok {
			return one(class)
		}
		return one(fallback(value))
	}
}

// prefixed builds keyword table where every value maps to "prefix-value"
// and appends explicit exceptions.
func prefixed(prefix string, values []string, extra map[string]string) map[string]string {
	table := make(map[string]string, len(values)+len(extra))
	for _, v := range values {
		table[v] = prefix + "-" + v
	}
	for k, v := range extra {
		table[k] = v
	}
	return table
}

// lookup returns scale step for value.
type lookup func(value string) (string, bool)

func fromTable(table map[string]string) lookup {
	return func(value string) (string, bool) {
		step, ok := table[strings.ToLower(value)]
		return step, ok
	}
}

func spacingStep(value string) (string, bool) {
	step, ok := spacingScale[value]
	return step, ok
}

func sizeStep(value string) (string, bool) {
	if step, ok := sizeKeywords[strings.ToLower(value)]; ok {
		return step, true
	}
	return spacingStep(value)
}

// chain combines lookups, first hit wins.
func chain(lookups ...lookup) lookup {
	return func(value string) (string, bool) {
		for _, l := range lookups {
			if step, ok := l(value); ok {
				return step, true
			}
		}
		return "", false
	}
}

// scaleClass converts measurement to "prefix-step". Negative values resolve
// to negated classes when their absolute value is on the scale. Anything else
// becomes arbitrary value.
func scaleClass(prefix string, steps lookup, value string) string {
	v := css.VarFallback(value)
	if step, ok := steps(v); ok {
		return join(prefix, step)
	}
	if abs, neg := strings.CutPrefix(v, "-"); neg {
		if step, ok := steps(abs); ok && step != "0" && step != "auto" {
			return negate(join(prefix, step), true)
		}
	}
	return arbitraryValue(prefix, v)
}

// scaled returns rule producing single scaleClass.
func scaled(prefix string, steps lookup) rule {
	return func(value string) []string {
		return one(scaleClass(prefix, steps, value))
	}
}

// boxNames are class prefixes of the uniform, axis and side forms of a box
// shorthand.
type boxNames struct {
	all, y, x, t, r, b, l string
}

// boxPrefixes returns names formed by suffixing prefix: "p", "py", "pt", ...
func boxPrefixes(prefix string) boxNames {
	return boxNames{prefix, prefix + "y", prefix + "x", prefix + "t", prefix + "r", prefix + "b", prefix + "l"}
}

// dashedPrefixes returns names formed with dash: "border", "border-y", ...
func dashedPrefixes(prefix string) boxNames {
	return boxNames{prefix, prefix + "-y", prefix + "-x", prefix + "-t", prefix + "-r", prefix + "-b", prefix + "-l"}
}

// sides expands 1/2/4 value shorthand: one value is uniform class, two are
// vertical and horizontal axes, four are top, right, bottom and left. Any
// other count results in a single arbitrary value class carrying the whole
// shorthand.
func sides(names boxNames, class func(prefix, value string) string) rule {
	return func(value string) []string {
		parts := css.SplitValues(value)
		switch len(parts) {
		case 1:
			return one(class(names.all, parts[0]))
		case 2:
			return []string{class(names.y, parts[0]), class(names.x, parts[1])}
		case 4:
			return []string{
				class(names.t, parts[0]),
				class(names.r, parts[1]),
				class(names.b, parts[2]),
				class(names.l, parts[3]),
			}
		}
		return one(arbitraryValue(names.all, value))
	}
}

// parseNumber parses CSS number optionally followed by unit, returns number
// and unit.
func parseNumber(value string) (float64, string, bool) {
	value = strings.TrimSpace(value)
	end := 0
	for end < len(value) && (value[end] >= '0' && value[end] <= '9' || value[end] == '.' ||
		value[end] == '-' || value[end] == '+' || value[end] == 'e' && end > 0 && end+1 < len(value) && isDigit(value[end+1])) {
		end++
	}
	if end == 0 {
		return 0, "", false
	}
	f, err := strconv.ParseFloat(value[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return f, strings.ToLower(value[end:]), true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isLength returns true for values which look like a length (used to
// classify parts of border and outline shorthands).
func isLength(value string) bool {
	v := strings.ToLower(css.VarFallback(value))
	switch v {
	case "thin", "medium", "thick":
		return true
	}
	if strings.HasPrefix(v, "calc(") {
		return true
	}
	_, _, ok := parseNumber(v)
	return ok
}

// integral returns f as int if it has no fractional part.
func integral(f float64) (int, bool) {
	r := math.Round(f)
	if math.Abs(f-r) > 1e-9 {
		return 0, false
	}
	return int(r), true
}

// percentage parses number or percentage into whole percent: "1.25" and
// "125%" are both 125.
func percentage(value string) (int, bool) {
	f, unit, ok := parseNumber(value)
	if !ok {
		return 0, false
	}
	switch unit {
	case "%":
	case "":
		f *= 100
	default:
		return 0, false
	}
	return integral(f)
}

// stepClass returns "prefix-N" when n is one of steps.
func stepClass(prefix string, n int, steps []int) (string, bool) {
	neg := n < 0
	if neg {
		n = -n
	}
	if !slices.Contains(steps, n) {
		return "", false
	}
	return negate(prefix+"-"+strconv.Itoa(n), neg), true
}
