package generate

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"gbcss/common"
	"gbcss/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	// Name is base name of the source file without extension or post id
	// for stored content.
	Name   string
	Title  string
	ID     int64
	Scope  string
	Blocks int
}

func newValues(name config.TemplateFieldName, s *source, scope common.Scope, blocks int) Values {
	return Values{
		Context: string(name),
		Name:    s.name,
		Title:   s.title,
		ID:      s.id,
		Scope:   scope.String(),
		Blocks:  blocks,
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
