package template

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/hmse-unipi/portal/internal/format"
	"github.com/hmse-unipi/portal/web"
)

const (
	templateDir string = "tmpl"
	baseName    string = "base.html"
)

var funcs = template.FuncMap{
	"rupiah":  format.Rupiah,
	"price":   format.Price,
	"date":    format.Date,
	"excerpt": excerpt,
}

// Renderer executes a page template inside the shared base layout.
// Templates are parsed once, at construction.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	return newRenderer(web.Templates)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	names, err := fs.Glob(fsys, templateDir+"/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range names {
		page := path.Base(name)
		if page == baseName {
			continue
		}

		t, err := template.New(page).Funcs(funcs).ParseFS(fsys,
			templateDir+"/"+baseName,
			name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = t
	}

	return r, nil
}

// Render writes the page with the given status. Nothing is written if
// execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, d *Data) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	buf := &bytes.Buffer{}
	if err := t.ExecuteTemplate(buf, "base", d); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func excerpt(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
