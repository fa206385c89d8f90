package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

//go:embed templates/*
var templateFS embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

func StaticFS() http.FileSystem {
	subFS, _ := fs.Sub(staticFS, "static")
	return http.FS(subFS)
}
