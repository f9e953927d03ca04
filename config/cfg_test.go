package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if !cfg.Conversion.UsePrefix {
		t.Error("Expected prefixing to be enabled by default")
	}
	if cfg.Conversion.Prefix != "" {
		t.Errorf("Default prefix = %q, want empty", cfg.Conversion.Prefix)
	}
	if cfg.Output.Format != OutputFmtClasses {
		t.Errorf("Default format = %s, want classes", cfg.Output.Format)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("Default file level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
conversion:
  use_prefix: true
  prefix: cv
output:
  format: jsx
  file_name_transliterate: true
logging:
  console:
    level: debug
  file:
    level: debug
    destination: /tmp/test.log
    mode: append
reporting:
  destination: /tmp/test-report.zip
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Conversion.Prefix != "cv" {
		t.Errorf("Prefix = %q, want cv", cfg.Conversion.Prefix)
	}
	if cfg.Output.Format != OutputFmtJsx {
		t.Errorf("Format = %s, want jsx", cfg.Output.Format)
	}
	if !cfg.Output.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_PartialFile(t *testing.T) {
	path := writeConfig(t, `version: 1
conversion:
  prefix: tw
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Conversion.Prefix != "tw" {
		t.Errorf("Prefix = %q, want tw", cfg.Conversion.Prefix)
	}
	// everything else comes from template
	if !cfg.Conversion.UsePrefix {
		t.Error("Expected UsePrefix from template")
	}
	if cfg.Reporting.Destination == "" {
		t.Error("Expected report destination from template")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nconversion:\n  prefix: cv\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"invalid version", "version: 2\n"},
		{"invalid format", "version: 1\noutput:\n  format: pdf\n"},
		{"invalid prefix", "version: 1\nconversion:\n  prefix: 'md:'\n"},
		{"invalid console level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version:    1,
		Conversion: ConversionConfig{UsePrefix: true, Prefix: "cv"},
		Output:     OutputConfig{Format: OutputFmtYaml},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none"},
		},
		Reporting: ReporterConfig{Destination: "report.zip"},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: yaml") {
		t.Errorf("Dump() output does not contain format name:\n%s", data)
	}

	restored, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if *restored != *cfg {
		t.Errorf("Restored config = %+v, want %+v", *restored, *cfg)
	}
}

func TestOutputFmt(t *testing.T) {
	for i, name := range OutputFmtNames() {
		f, err := ParseOutputFmt(strings.ToUpper(name))
		if err != nil {
			t.Fatalf("ParseOutputFmt(%q) error = %v", name, err)
		}
		if int(f) != i || f.String() != name || !f.IsValid() {
			t.Errorf("ParseOutputFmt(%q) = %d (%s)", name, f, f)
		}
		if f.Ext() == "" {
			t.Errorf("%s: empty extension", f)
		}
	}

	if _, err := ParseOutputFmt("pdf"); !errors.Is(err, ErrInvalidOutputFmt) {
		t.Errorf("Expected ErrInvalidOutputFmt, got %v", err)
	}
	if OutputFmt(42).IsValid() {
		t.Error("Unexpected valid format")
	}
	if OutputFmtHtml.Attribute() != "class" || OutputFmtJsx.Attribute() != "className" || OutputFmtClasses.Attribute() != "" {
		t.Error("Unexpected attribute names")
	}

	var holder struct {
		Format OutputFmt `yaml:"format"`
	}
	if err := yaml.Unmarshal([]byte("format: html\n"), &holder); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if holder.Format != OutputFmtHtml {
		t.Errorf("Format = %s, want html", holder.Format)
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"button.css", "button.css"},
		{"..hidden", "hidden"},
		{"a/b", "ab"},
		{"tab\there", "tabhere"},
		{"", "_bad_file_name_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CleanFileName(tt.input); got != tt.expected {
				t.Errorf("CleanFileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
