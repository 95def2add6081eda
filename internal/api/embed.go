package api

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed web/templates/*.html web/static
var webFS embed.FS

func pageTemplates() (*template.Template, error) {
	return template.ParseFS(webFS, "web/templates/*.html")
}

// staticFS returns the embedded static assets with the "web/static" prefix stripped.
func staticFS() (fs.FS, error) {
	return fs.Sub(webFS, "web/static")
}
