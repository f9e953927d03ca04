package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"css2tw/config"
)

func TestFormatResult(t *testing.T) {
	r := Result{Source: "button.css", Classes: []string{"flex", "p-4"}}

	tests := []struct {
		format   config.OutputFmt
		expected string
	}{
		{config.OutputFmtClasses, "flex p-4\n"},
		{config.OutputFmtHtml, `class="flex p-4"` + "\n"},
		{config.OutputFmtJsx, `className="flex p-4"` + "\n"},
		{config.OutputFmtYaml, "source: button.css\nclasses: flex p-4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, err := formatResult(r, tt.format)
			if err != nil {
				t.Fatalf("formatResult() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("formatResult() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMarkupQuotes(t *testing.T) {
	r := Result{Classes: []string{`[content:"a"]`}}

	if got, want := markup(r, config.OutputFmtHtml), `class="[content:&quot;a&quot;]"`; got != want {
		t.Errorf("html = %s, want %s", got, want)
	}
	if got, want := markup(r, config.OutputFmtJsx), `className={"[content:\"a\"]"}`; got != want {
		t.Errorf("jsx = %s, want %s", got, want)
	}
}

func TestWriteResults(t *testing.T) {
	results := []Result{
		{Source: "a.css", Classes: []string{"flex"}},
		{Source: "b.css", Classes: nil},
	}

	t.Run("single", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeResults(&buf, results[:1], config.OutputFmtClasses); err != nil {
			t.Fatalf("writeResults() error = %v", err)
		}
		if buf.String() != "flex\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("several", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeResults(&buf, results, config.OutputFmtHtml); err != nil {
			t.Fatalf("writeResults() error = %v", err)
		}
		want := "a.css: class=\"flex\"\nb.css: class=\"\"\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeResults(&buf, results, config.OutputFmtYaml); err != nil {
			t.Fatalf("writeResults() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "- source: a.css\n") || !strings.Contains(out, "- source: b.css\n") {
			t.Errorf("unexpected yaml:\n%s", out)
		}
	})
}

func TestBuildOutputPath(t *testing.T) {
	dst := filepath.Join("out", "dir")
	classes := naming{format: config.OutputFmtClasses}

	tests := []struct {
		name     string
		source   string
		naming   naming
		expected string
	}{
		{"plain", "button.css", classes, filepath.Join(dst, "button.txt")},
		{"nested", filepath.Join("ui", "card.css"), naming{format: config.OutputFmtJsx}, filepath.Join(dst, "ui", "card.jsx")},
		{"stdin", stdinName, naming{format: config.OutputFmtYaml}, filepath.Join(dst, "stdin.yaml")},
		{"transliterated", "Café Menu.css", naming{format: config.OutputFmtHtml, transliterate: true}, filepath.Join(dst, "cafe-menu.html")},
		{"hidden", ".theme.css", classes, filepath.Join(dst, "theme.txt")},
		{
			"template",
			filepath.Join("ui", "Card.css"),
			naming{format: config.OutputFmtJsx, prefix: "cv", template: "{{ .Prefix }}/{{ .Format }}/{{ .Dir }}/{{ .SourceFile | lower }}"},
			filepath.Join(dst, "cv", "jsx", "ui", "card.jsx"),
		},
		{
			"template at top level",
			"Card.css",
			naming{format: config.OutputFmtClasses, template: "{{ .Dir }}/{{ .SourceFile }}-classes"},
			filepath.Join(dst, "Card-classes.txt"),
		},
		{
			"template cannot escape destination",
			"card.css",
			naming{format: config.OutputFmtClasses, template: "../../{{ .SourceFile }}"},
			filepath.Join(dst, "card.txt"),
		},
		{
			"broken template falls back",
			"card.css",
			naming{format: config.OutputFmtClasses, template: "{{ .Missing "},
			filepath.Join(dst, "card.txt"),
		},
		{
			"empty expansion falls back",
			"card.css",
			naming{format: config.OutputFmtClasses, template: "{{ if false }}x{{ end }}"},
			filepath.Join(dst, "card.txt"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildOutputPath(tt.source, dst, tt.naming, zaptest.NewLogger(t)); got != tt.expected {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestExpandTemplate(t *testing.T) {
	values := buildValues(filepath.Join("a", "b", "Button.css"), naming{format: config.OutputFmtHtml, prefix: "cv"})
	if values.SourceFile != "Button" || values.Dir != "a/b" || values.Format != "html" || values.Prefix != "cv" {
		t.Errorf("unexpected values: %+v", values)
	}

	got, err := expandTemplate(`{{ .Dir | replace "/" "-" }}-{{ .SourceFile | upper }}`, values)
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "a-b-BUTTON" {
		t.Errorf("expandTemplate() = %q", got)
	}

	if _, err := expandTemplate("{{ .Unknown }}", values); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestWriteOutput(t *testing.T) {
	log := zaptest.NewLogger(t)
	name := filepath.Join(t.TempDir(), "deep", "a.txt")

	if err := writeOutput(name, []byte("one"), false, log); err != nil {
		t.Fatalf("writeOutput() error = %v", err)
	}
	if err := writeOutput(name, []byte("two"), false, log); err == nil {
		t.Error("Expected error for existing file")
	}
	if err := writeOutput(name, []byte("three"), true, log); err != nil {
		t.Fatalf("writeOutput() with overwrite error = %v", err)
	}
	if data, _ := os.ReadFile(name); string(data) != "three" {
		t.Errorf("content = %q", data)
	}
}
