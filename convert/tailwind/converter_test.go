package tailwind

import (
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
)

const figmaButton = `display: flex;
padding: var(--Spacing-S, 0.25rem) var(--Spacing-M, 0.5rem);
justify-content: center;
align-items: center;
gap: 0.5rem;
border-radius: var(--Radius-M, 0.5rem);
border: 1px solid var(--Grey-200, #E5E7EB);
background: var(--Blues-Lights-30, #D0DCF0);
`

const figmaText = `/* New/Paragraph/P3 Semibold */
font-family: Inter;
font-size: 0.625rem;
font-weight: 600;
line-height: 0.875rem;
letter-spacing: 0.01563rem;
font-style: normal;
color: var(--Grey-900, #111827);
`

func TestConvert(t *testing.T) {
	noPrefix := Options{}
	tests := []struct {
		name     string
		css      string
		opts     Options
		expected string
	}{
		{"empty", "", noPrefix, ""},
		{"blank", "   \n  ", noPrefix, ""},
		{"uniform padding", "padding: 1rem;", noPrefix, "p-4"},
		{"four value padding", "padding: 0.25rem 0.5rem 0.75rem 1rem;", noPrefix, "pt-1 pr-2 pb-3 pl-4"},
		{"merge top and bottom", "padding-top: 0.25rem;\npadding-bottom: 0.25rem;", noPrefix, "py-1"},
		{"single side", "padding-top: 0.25rem;", noPrefix, "pt-1"},
		{"merge by converted value", "padding-top: 4px;\npadding-bottom: 0.25rem;", noPrefix, "py-1"},
		{"var in spacing", "padding: var(--S, 0.25rem);", noPrefix, "p-1"},
		{"var in color", "background: var(--Blues-Lights-30, #D0DCF0);", noPrefix, "bg-blues-lights-30"},
		{"unknown property", "foo-bar: baz;", noPrefix, "[foo-bar:baz]"},
		{"unknown property case kept", "Foo-Bar: Baz;", noPrefix, "[Foo-Bar:Baz]"},
		{"property case", "Margin-Top: 1rem;", noPrefix, "mt-4"},
		{"suppressed typography", "font-family: Inter;\nline-height: 1.5;\nletter-spacing: 0.01em;", noPrefix, ""},
		{"font comment", figmaText, noPrefix, "paragraph-p3-semibold text-grey-900"},
		{"figma button", figmaButton, noPrefix,
			"flex py-1 px-2 justify-center items-center gap-2 rounded-lg border border-solid border-grey-200 bg-blues-lights-30"},
		{"spacing moved to the end", "margin-top: 1rem;\ndisplay: block;\nmargin-bottom: 1rem;", noPrefix, "block my-4"},
		{"prefix", "display: flex;\nfoo: bar;", Options{UsePrefix: true, Prefix: "cv"}, "cv:flex [foo:bar]"},
		{"prefix disabled", "display: flex;", Options{UsePrefix: false, Prefix: "cv"}, "flex"},
		{"empty prefix", "display: flex;", Options{UsePrefix: true}, "flex"},
		{"prefix with font comment", figmaText, Options{UsePrefix: true, Prefix: "cv"}, "cv:paragraph-p3-semibold cv:text-grey-900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConverter(zaptest.NewLogger(t))
			if got := c.Convert(tt.css, tt.opts); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestConvertPackageLevel(t *testing.T) {
	if got := Convert("display: grid;", Options{UsePrefix: true, Prefix: "tw"}); got != "tw:grid" {
		t.Errorf("expected %q, got %q", "tw:grid", got)
	}
}

func TestConvertUniformPaddingScale(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	for _, s := range spacingSteps {
		got := c.Classes("padding: "+s.rem+";", Options{})
		want := []string{"p-" + s.step}
		if !slices.Equal(got, want) {
			t.Errorf("%s: expected %q, got %q", s.rem, want, got)
		}
	}
}

func TestConvertFontCommentReplacesTypography(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	got := c.Classes(figmaText, Options{})
	if len(got) == 0 || got[0] != "paragraph-p3-semibold" {
		t.Fatalf("expected font class first, got %q", got)
	}
	for _, class := range got[1:] {
		for _, p := range []string{"font-", "text-[", "italic", "not-italic", "leading", "tracking"} {
			if strings.HasPrefix(class, p) {
				t.Errorf("unexpected typography class %q", class)
			}
		}
	}

	// same declarations without comment produce typography classes
	plain := strings.TrimPrefix(figmaText, "/* New/Paragraph/P3 Semibold */\n")
	want := []string{"text-[0.625rem]", "font-semibold", "not-italic", "text-grey-900"}
	if got := c.Classes(plain, Options{}); !slices.Equal(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestConvertBlankFontComment(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	got := c.Convert("/* !!! */\nfont-weight: 700;", Options{})
	if got != "font-bold" {
		t.Errorf("expected %q, got %q", "font-bold", got)
	}
}

func TestConvertLeadingBlankComment(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	got := c.Convert("/* */\n/* Heading */\nfont-weight: 700;", Options{})
	if got != "font-bold" {
		t.Errorf("expected %q, got %q", "font-bold", got)
	}
}

func TestSupportedProperties(t *testing.T) {
	props := SupportedProperties()
	if !slices.IsSorted(props) {
		t.Error("properties are not sorted")
	}
	for _, p := range []string{"padding", "margin", "background", "opacity", "transform", "grid-template-columns", "font-family"} {
		if !slices.Contains(props, p) {
			t.Errorf("property %q is not supported", p)
		}
	}
	if !IsSupportedProperty("PADDING") {
		t.Error("lookup must ignore case")
	}
	if IsSupportedProperty("foo-bar") {
		t.Error("unexpected property")
	}
}

func TestExplain(t *testing.T) {
	c := NewConverter(zaptest.NewLogger(t))
	text := "/* Inter Bold */\nfont-size: 14px;\nfoo-bar: 1;\npadding-top: 4px;\npadding-bottom: 4px;"

	got := c.Explain(text, Options{UsePrefix: true, Prefix: "cv"})
	for _, want := range []string{
		"  class: \"inter-bold\"\n",
		"declaration: \"font-size: 14px;\"\n  replaced by font class\n",
		"declaration: \"foo-bar: 1;\"\n  unsupported property\n  classes: [[foo-bar:1]]\n",
		"declaration: \"padding-top: 4px;\"\n  classes: [pt-1]\n",
		"optimized: [inter-bold [foo-bar:1] py-1]\n",
		"result: [cv:inter-bold [foo-bar:1] cv:py-1]\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("trace does not contain %q:\n%s", want, got)
		}
	}

	if got := c.Explain(" \n", Options{}); got != "blank input\n" {
		t.Errorf("blank trace = %q", got)
	}
	if c.Convert(text, Options{UsePrefix: true, Prefix: "cv"}) != "cv:inter-bold [foo-bar:1] cv:py-1" {
		t.Error("trace and conversion disagree")
	}
}
