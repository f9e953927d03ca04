package css

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser extracts declarations and comments from loosely formatted CSS text,
// usually a block copied from a design tool inspector.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS declaration parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations splits text into declarations, one per line.
//
// Parsing is intentionally line oriented: every non-empty line which does not
// start with a comment and has a colon is split at the first colon. Values
// continued on the following lines are not supported, the fragment on the
// first line is used as is.
func (p *Parser) ParseDeclarations(text string) []Declaration {
	var decls []Declaration
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "/*") {
			continue
		}
		property, value, found := strings.Cut(line, ":")
		if !found {
			p.log.Debug("Skipping line without declaration", zap.Int("line", n+1), zap.String("text", line))
			continue
		}
		property = strings.TrimSpace(property)
		value = cleanValue(value)
		if property == "" || value == "" {
			p.log.Debug("Skipping incomplete declaration", zap.Int("line", n+1), zap.String("text", line))
			continue
		}
		decls = append(decls, Declaration{Property: property, Value: value})
	}
	return decls
}

// cleanValue drops trailing comment (design tools like to annotate values,
// e.g. "0.875rem; /* 140% */"), trailing semicolon and surrounding blanks.
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "*/") {
		if i := strings.LastIndex(value, "/*"); i >= 0 {
			value = strings.TrimSpace(value[:i])
		}
	}
	value = strings.TrimSuffix(value, ";")
	return strings.TrimSpace(value)
}

// FirstComment returns trimmed body of the first terminated comment in text
// which has no asterisks in its body. Search stops there, so blank comment
// means no comment at all.
func (p *Parser) FirstComment(text string) (string, bool) {
	lexer := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			// end of input, lexer never fails otherwise
			return "", false
		case css.CommentToken:
			raw := string(data)
			if len(raw) < 5 || !strings.HasSuffix(raw, "*/") {
				// unterminated or empty
				continue
			}
			body := raw[2 : len(raw)-2]
			if strings.Contains(body, "*") {
				continue
			}
			if body = strings.TrimSpace(body); body == "" {
				p.log.Debug("First comment is blank")
				return "", false
			}
			p.log.Debug("Found comment", zap.String("comment", body))
			return body, true
		}
	}
}
