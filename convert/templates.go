package convert

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// Values is a struct that holds variables we make available for output name
// template expansion.
type Values struct {
	SourceFile string // source file name without extension
	Dir        string // source directory relative to SOURCE, slash separated, empty at top level
	Format     string
	Prefix     string
}

func buildValues(name string, n naming) Values {
	dir := path.Dir(filepath.ToSlash(name))
	if dir == "." {
		dir = ""
	}
	return Values{
		SourceFile: strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)),
		Dir:        dir,
		Format:     n.format.String(),
		Prefix:     n.prefix,
	}
}

func expandTemplate(field string, values Values) (string, error) {
	tmpl, err := template.New("name_template").Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse output name template: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}
	return buf.String(), nil
}
