// Package web renders the portfolio landing page.
package web

import (
	"embed"
	"html/template"
	"io"

	"go-portfolio-backend/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// IndexTemplate is the name of the landing page template
const IndexTemplate = "index.html"

var funcs = template.FuncMap{
	// text prints an optional column, rendering NULL as empty
	"text": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"present": func(s *string) bool {
		return s != nil && *s != ""
	},
}

// Templates parses the embedded templates. It panics on a malformed
// template since they are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// Render writes the landing page for p
func Render(w io.Writer, p *domain.Portfolio) error {
	return Templates().ExecuteTemplate(w, IndexTemplate, p)
}
