package httpapi

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/riskibarqy/matchup-insight/internal/domain/fixture"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	templateIndex  = "index.html"
	templateResult = "result.html"
)

// Renderer writes a named page for a data context.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

var templateFuncs = template.FuncMap{
	"percent": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 1, 64) + "%"
	},
	"decimal": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"score": func(f fixture.Fixture) string {
		if !f.Played() {
			return "-"
		}
		return fmt.Sprintf("%d - %d", *f.Fulltime.Home, *f.Fulltime.Away)
	},
	"matchDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
}
