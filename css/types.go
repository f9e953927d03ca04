package css

import "strings"

// Declaration is a single "property: value" pair taken from CSS text.
type Declaration struct {
	Property string // Property name as written (e.g., "padding", "--Spacing-S")
	Value    string // Value without trailing semicolon (e.g., "var(--S, 0.25rem)")
}

// Name returns the lowercased property name used for rule lookup.
func (d Declaration) Name() string {
	return strings.ToLower(d.Property)
}

// IsCustomProperty returns true for custom property definitions (--name: value).
func (d Declaration) IsCustomProperty() bool {
	return strings.HasPrefix(d.Property, "--")
}

// String returns the CSS representation of the declaration.
func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}
