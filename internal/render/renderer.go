package render

import (
	"bytes"
	_ "embed"
	"os"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/stargazer-dev/stargazer/internal/app"
)

//go:embed readme.md.tmpl
var defaultTemplate string

// TemplateRenderer renders readme data through a text template.
// This struct is an adapter for app.Renderer.
type TemplateRenderer struct {
	tmpl *template.Template
}

var _ app.Renderer = &TemplateRenderer{}

// NewTemplateRenderer creates a renderer using the bundled readme
// template, or the template file at path when path is not empty.
func NewTemplateRenderer(path string) (*TemplateRenderer, error) {
	text := defaultTemplate
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading template file")
		}
		text = string(b)
	}

	tmpl, err := template.New("readme").Funcs(template.FuncMap{
		"anchor": anchor,
	}).Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "parsing template")
	}

	return &TemplateRenderer{
		tmpl: tmpl,
	}, nil
}

// Render binds data into the template. Pure function, identical data
// yields identical bytes.
func (r *TemplateRenderer) Render(data app.ReadmeData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	return buf.Bytes(), nil
}

// anchor turns a section heading into a github markdown anchor: lower
// case, spaces to dashes, everything outside [a-z0-9-_] dropped.
func anchor(heading string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(heading) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	return b.String()
}
