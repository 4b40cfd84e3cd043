// Package assets embeds the site templates and static files and renders
// pages through per-page template sets built over a shared layout.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS holds the embedded static assets rooted at static/, ready to
// serve under the /static/ URL prefix.
var StaticFS = mustSub(staticFS, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
