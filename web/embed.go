// Package web embeds the grid editor page served by cmd/sudoku-web.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var Assets embed.FS

// StaticFS returns the editor's stylesheet and script for serving
// under /static.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		// In practice this should not fail; fall back to empty FS.
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// Templates parses the embedded editor templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(Assets, "templates/*.tmpl"))
}
