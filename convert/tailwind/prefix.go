package tailwind

import (
	"strings"
)

// Options controls conversion output.
type Options struct {
	// UsePrefix enables prefixing, it has no effect with empty Prefix.
	UsePrefix bool
	Prefix    string
}

func (o Options) prefixing() bool {
	return o.UsePrefix && o.Prefix != ""
}

// ApplyPrefix returns classes with "prefix:" in front of every class which
// is not arbitrary property and is not already scoped (contains ':').
// Applying it to its own output changes nothing.
func ApplyPrefix(classes []string, opts Options) []string {
	if !opts.prefixing() {
		return classes
	}
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		if strings.HasPrefix(class, "[") || strings.Contains(class, ":") {
			out = append(out, class)
			continue
		}
		out = append(out, opts.Prefix+":"+class)
	}
	return out
}
