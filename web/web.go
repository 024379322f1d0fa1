// Package web embeds the browser client for the catalog.
// The client is plain HTML/JS talking to the JSON API, served under /app.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

// Handler serves the embedded client files
func Handler() http.Handler {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// The embedded tree is fixed at compile time; this cannot fail at runtime
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
