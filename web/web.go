// Package web holds the page templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed tmpl/*.html
var Templates embed.FS

//go:embed static
var static embed.FS

// Static is the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
