package config

import (
	"fmt"
	"strings"
)

// Specification of requested output format.
type OutputFmt int

const (
	OutputFmtClasses OutputFmt = iota
	OutputFmtHtml
	OutputFmtJsx
	OutputFmtYaml
)

var outputFmtNames = []string{"classes", "html", "jsx", "yaml"}

// ErrInvalidOutputFmt is returned for unknown output format names.
var ErrInvalidOutputFmt = fmt.Errorf("not a valid OutputFmt, try [%s]", strings.Join(outputFmtNames, ", "))

// OutputFmtNames returns a list of possible string values of OutputFmt.
func OutputFmtNames() []string {
	names := make([]string, len(outputFmtNames))
	copy(names, outputFmtNames)
	return names
}

func (o OutputFmt) String() string {
	if o >= 0 && int(o) < len(outputFmtNames) {
		return outputFmtNames[o]
	}
	return fmt.Sprintf("OutputFmt(%d)", o)
}

// IsValid provides a quick way to determine if the typed value is part of
// the allowed enumerated values.
func (o OutputFmt) IsValid() bool {
	return o >= 0 && int(o) < len(outputFmtNames)
}

// ParseOutputFmt attempts to convert a string to an OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(n, name) {
			return OutputFmt(i), nil
		}
	}
	return OutputFmt(0), fmt.Errorf("%s is %w", name, ErrInvalidOutputFmt)
}

// MarshalText implements the text marshaller method.
func (o OutputFmt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements the text unmarshaller method.
func (o *OutputFmt) UnmarshalText(text []byte) error {
	tmp, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = tmp
	return nil
}

// Ext returns output file extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtClasses:
		return ".txt"
	case OutputFmtHtml:
		return ".html"
	case OutputFmtJsx:
		return ".jsx"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Attribute returns markup attribute name used by the format, empty for
// formats which do not wrap classes.
func (o OutputFmt) Attribute() string {
	switch o {
	case OutputFmtHtml:
		return "class"
	case OutputFmtJsx:
		return "className"
	}
	return ""
}
