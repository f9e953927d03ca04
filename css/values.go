package css

import (
	"regexp"
	"strings"
	"unicode"
)

// Custom property references: var(--name) and var(--name, fallback).
var (
	varReference = regexp.MustCompile(`var\(([^,)]+)(?:,\s*([^)]+))?\)`)
	varFallback  = regexp.MustCompile(`var\([^,)]+,\s*([^)]+)\)`)
)

// maxFallbackDepth limits unwrapping of nested var() fallbacks.
const maxFallbackDepth = 8

// VarClassName replaces every custom property reference in value with the
// name of the property turned into class name: "var(--Blues_Light, #fff)"
// becomes "blues-light". Used where variable denotes design token (colors),
// fallback is ignored.
func VarClassName(value string) string {
	return varReference.ReplaceAllStringFunc(value, func(match string) string {
		sub := varReference.FindStringSubmatch(match)
		name := strings.Replace(strings.TrimSpace(sub[1]), "--", "", 1)
		return strings.ReplaceAll(strings.ToLower(name), "_", "-")
	})
}

// VarFallback replaces every custom property reference which has a fallback
// with the fallback itself. References without fallback or with blank one are
// left untouched.
// Used where literal measurement is needed (spacing, sizes, radius).
func VarFallback(value string) string {
	for range maxFallbackDepth {
		next := varFallback.ReplaceAllStringFunc(value, func(match string) string {
			if fallback := strings.TrimSpace(varFallback.FindStringSubmatch(match)[1]); fallback != "" {
				return fallback
			}
			// blank fallback, keep reference
			return match
		})
		if next == value {
			break
		}
		value = next
	}
	return value
}

// HasVar returns true if value references custom property.
func HasVar(value string) bool {
	return varReference.MatchString(value)
}

// SplitValues splits space separated shorthand value into components.
// Parenthesized parts are never split, so "var(--S, 0.25rem) 1rem" results
// in two components.
func SplitValues(value string) []string {
	return splitTopLevel(value, func(r rune) bool { return r == ' ' || r == '\t' })
}

// SplitList splits comma separated value (multiple shadows, transitions,
// gradient stops) ignoring commas inside parentheses.
func SplitList(value string) []string {
	return splitTopLevel(value, func(r rune) bool { return r == ',' })
}

func splitTopLevel(value string, isSep func(rune) bool) []string {
	var (
		parts []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			parts = append(parts, s)
		}
		cur.Reset()
	}
	for _, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && isSep(r) {
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return parts
}

// ParseFunction splits functional notation "name(args)" into lowercased name
// and trimmed arguments.
func ParseFunction(value string) (name, args string, ok bool) {
	value = strings.TrimSpace(value)
	i := strings.IndexByte(value, '(')
	if i <= 0 || !strings.HasSuffix(value, ")") {
		return "", "", false
	}
	name = strings.ToLower(strings.TrimSpace(value[:i]))
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", "", false
	}
	return name, strings.TrimSpace(value[i+1 : len(value)-1]), true
}
