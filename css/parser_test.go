package css_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"css2tw/css"
)

const figmaSample = `color: var(--Secondary-Blue-100, #003EE6);
/* New/Paragraph/P3 Semibold */
font-family: "Open Sans";
font-size: 0.625rem;
font-style: normal;
font-weight: 600;
line-height: 0.875rem; /* 140% */
letter-spacing: 0.01563rem;
display: flex;
padding: var(--XS, 0.125rem) var(--Edge, 0.375rem) var(--XS, 0.125rem) var(--S, 0.25rem);
`

func TestParser_ParseDeclarations(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	decls := p.ParseDeclarations(figmaSample)
	if len(decls) != 9 {
		t.Fatalf("expected 9 declarations, got %d: %v", len(decls), decls)
	}

	want := []css.Declaration{
		{Property: "color", Value: "var(--Secondary-Blue-100, #003EE6)"},
		{Property: "font-family", Value: `"Open Sans"`},
		{Property: "font-size", Value: "0.625rem"},
		{Property: "font-style", Value: "normal"},
		{Property: "font-weight", Value: "600"},
		{Property: "line-height", Value: "0.875rem"},
		{Property: "letter-spacing", Value: "0.01563rem"},
		{Property: "display", Value: "flex"},
		{Property: "padding", Value: "var(--XS, 0.125rem) var(--Edge, 0.375rem) var(--XS, 0.125rem) var(--S, 0.25rem)"},
	}
	for i, d := range want {
		if decls[i] != d {
			t.Errorf("declaration %d: expected %q, got %q", i, d, decls[i])
		}
	}
}

func TestParser_SkipsMalformedLines(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"blank lines", "\n   \n\t\n", 0},
		{"comment line", "/* display: flex; */", 0},
		{"no colon", "display flex;", 0},
		{"empty value", "display: ;", 0},
		{"empty property", ": flex;", 0},
		{"windows line endings", "display: flex;\r\ngap: 1rem;\r\n", 2},
		{"first colon wins", "background: url(http://example.com/a.png);", 1},
		{"no semicolon", "display: flex", 1},
		{"multi line value keeps first fragment", "box-shadow: 0 0 1px red,\n  0 0 2px blue;", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := p.ParseDeclarations(tt.input)
			if len(decls) != tt.want {
				t.Errorf("expected %d declarations, got %d: %v", tt.want, len(decls), decls)
			}
		})
	}
}

func TestParser_ValueCleanup(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		input string
		want  string
	}{
		{"background: url(http://example.com/a.png);", "url(http://example.com/a.png)"},
		{"line-height: 0.875rem; /* 140% */", "0.875rem"},
		{"  gap :  1rem  ;  ", "1rem"},
		{"box-shadow: 0 0 1px red,", "0 0 1px red,"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			decls := p.ParseDeclarations(tt.input)
			if len(decls) != 1 {
				t.Fatalf("expected 1 declaration, got %d", len(decls))
			}
			if decls[0].Value != tt.want {
				t.Errorf("expected value %q, got %q", tt.want, decls[0].Value)
			}
		})
	}
}

func TestParser_FirstComment(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"figma sample", figmaSample, "New/Paragraph/P3 Semibold", true},
		{"no comments", "display: flex;", "", false},
		{"blank comment stops search", "/*   */\n/* Heading/H1 */", "", false},
		{"empty comment skipped", "/**/\n/* Heading/H1 */", "Heading/H1", true},
		{"asterisk comment skipped", "/** doc **/\n/* Body */", "Body", true},
		{"unterminated", "/* Body", "", false},
		{"trailing comment", "line-height: 1rem; /* 140% */", "140%", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.FirstComment(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got ok=%v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDeclaration(t *testing.T) {
	d := css.Declaration{Property: "Padding-Top", Value: "1rem"}
	if d.Name() != "padding-top" {
		t.Errorf("expected lowercased name, got %q", d.Name())
	}
	if d.IsCustomProperty() {
		t.Error("expected regular property")
	}
	if d.String() != "Padding-Top: 1rem;" {
		t.Errorf("unexpected string form %q", d.String())
	}
	if !(css.Declaration{Property: "--Spacing-S", Value: "4px"}).IsCustomProperty() {
		t.Error("expected custom property")
	}
}
