// Package web holds the server-rendered display page: a read-only view of
// the same profile data the API exposes.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses the embedded page templates. Used with gin's
// SetHTMLTemplate so the binary carries its own views.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
