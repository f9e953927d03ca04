package tailwind

import (
	"strings"

	"go.uber.org/zap"

	"css2tw/css"
	"css2tw/utils/debug"
)

// Converter converts blocks of CSS declarations to utility classes.
type Converter struct {
	log    *zap.Logger
	parser *css.Parser
}

// NewConverter creates a new CSS-to-Tailwind converter.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		log:    log.Named("tailwind"),
		parser: css.NewParser(log),
	}
}

// Classes converts CSS text to ordered list of classes. Leading font comment
// class, if any, comes first and replaces typography declarations.
func (c *Converter) Classes(text string, opts Options) []string {
	return c.classes(text, opts, nil)
}

// Explain converts CSS text recording every step: font comment, classes
// produced by each declaration, optimization and prefixing.
func (c *Converter) Explain(text string, opts Options) string {
	tw := debug.NewTreeWriter()
	c.classes(text, opts, tw)
	return tw.String()
}

func (c *Converter) classes(text string, opts Options, tw *debug.TreeWriter) []string {
	if strings.TrimSpace(text) == "" {
		tw.Line(0, "blank input")
		return nil
	}

	var classes []string

	fontClass := ""
	if comment, ok := c.parser.FirstComment(text); ok {
		fontClass = FontClassName(comment)
		tw.Field(0, "font comment", comment)
		tw.Field(1, "class", fontClass)
	}
	if fontClass != "" {
		c.log.Debug("Font comment found", zap.String("class", fontClass))
		classes = append(classes, fontClass)
	}

	for _, d := range c.parser.ParseDeclarations(text) {
		tw.Field(0, "declaration", d.String())
		if fontClass != "" && typographyProperties[d.Name()] {
			tw.Line(1, "replaced by font class")
			continue
		}
		converted := c.ConvertDeclaration(d)
		if !IsSupportedProperty(d.Name()) {
			tw.Line(1, "unsupported property")
		}
		tw.List(1, "classes", converted)
		classes = append(classes, converted...)
	}

	optimized := Optimize(classes)
	tw.List(0, "optimized", optimized)
	result := ApplyPrefix(optimized, opts)
	tw.List(0, "result", result)
	return result
}

// Convert converts CSS text to space separated list of classes.
func (c *Converter) Convert(text string, opts Options) string {
	return strings.Join(c.Classes(text, opts), " ")
}

// ConvertDeclaration converts single declaration, unknown properties are
// carried over as arbitrary properties.
func (c *Converter) ConvertDeclaration(d css.Declaration) []string {
	if r, ok := propertyRules[d.Name()]; ok {
		return r(d.Value)
	}
	c.log.Debug("Unsupported property", zap.Stringer("declaration", d))
	return one(arbitraryProperty(d.Property, d.Value))
}

var defaultConverter = NewConverter(nil)

// Convert converts CSS text to space separated list of classes without
// logging.
func Convert(text string, opts Options) string {
	return defaultConverter.Convert(text, opts)
}
