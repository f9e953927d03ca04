package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"css2tw/config"
	"css2tw/state"
)

// Result is the outcome of converting single source.
type Result struct {
	Source  string
	Classes []string
}

func (r Result) String() string {
	return strings.Join(r.Classes, " ")
}

type yamlResult struct {
	Source  string `yaml:"source"`
	Classes string `yaml:"classes"`
}

func (r Result) toYaml() yamlResult {
	return yamlResult{Source: r.Source, Classes: r.String()}
}

// markup renders result body without line terminator.
func markup(r Result, format config.OutputFmt) string {
	classes := r.String()
	switch format {
	case config.OutputFmtHtml:
		return format.Attribute() + `="` + strings.ReplaceAll(classes, `"`, "&quot;") + `"`
	case config.OutputFmtJsx:
		if strings.ContainsRune(classes, '"') {
			return format.Attribute() + "={" + strconv.Quote(classes) + "}"
		}
		return format.Attribute() + `="` + classes + `"`
	default:
		return classes
	}
}

// formatResult renders single result as content of output file.
func formatResult(r Result, format config.OutputFmt) ([]byte, error) {
	if format == config.OutputFmtYaml {
		data, err := yaml.Marshal(r.toYaml())
		if err != nil {
			return nil, fmt.Errorf("unable to marshal result: %w", err)
		}
		return data, nil
	}
	return []byte(markup(r, format) + "\n"), nil
}

// writeResults renders all results to single stream. Several results in
// textual formats are prefixed with their source names.
func writeResults(w io.Writer, results []Result, format config.OutputFmt) error {
	if format == config.OutputFmtYaml {
		list := make([]yamlResult, 0, len(results))
		for _, r := range results {
			list = append(list, r.toYaml())
		}
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("unable to marshal results: %w", err)
		}
		return enc.Close()
	}

	var buf bytes.Buffer
	for _, r := range results {
		if len(results) > 1 {
			buf.WriteString(r.Source)
			buf.WriteString(": ")
		}
		buf.WriteString(markup(r, format))
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// naming controls output file names.
type naming struct {
	format        config.OutputFmt
	transliterate bool
	template      string
	prefix        string
}

func newNaming(env *state.LocalEnv) naming {
	n := naming{format: env.Format, prefix: env.Options.Prefix}
	if env.Cfg != nil {
		n.transliterate = env.Cfg.Output.FileNameTransliterate
		n.template = env.Cfg.Output.NameTemplate
	}
	return n
}

// buildOutputPath returns output file name for the source. By default it
// mirrors source relative location under dst, with name template expanded
// path is used instead. Every path segment is cleaned and if requested
// transliterated.
func buildOutputPath(name, dst string, n naming, log *zap.Logger) string {
	if name == stdinName {
		name = "stdin"
	}

	segments := strings.Split(filepath.ToSlash(name), "/")
	segments[len(segments)-1] = strings.TrimSuffix(segments[len(segments)-1], filepath.Ext(name))

	if n.template != "" {
		expanded, err := expandTemplate(n.template, buildValues(name, n))
		if err != nil {
			log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		} else if parts := splitTemplatePath(expanded); len(parts) > 0 {
			segments = parts
		}
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dst)
	for i, segment := range segments {
		if n.transliterate {
			segment = slug.Make(segment)
		}
		segment = config.CleanFileName(segment)
		if i == len(segments)-1 {
			segment += n.format.Ext()
		}
		parts = append(parts, segment)
	}
	return filepath.Join(parts...)
}

// splitTemplatePath breaks expanded template into path segments dropping
// empty ones and anything which could lead outside of destination.
func splitTemplatePath(expanded string) []string {
	var segments []string
	for segment := range strings.SplitSeq(filepath.ToSlash(strings.TrimSpace(expanded)), "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" || segment == "." || segment == ".." {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// writeOutput stores data under outputName refusing to replace existing file
// unless overwrite is requested.
func writeOutput(outputName string, data []byte, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
