package rest

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	viewShow     = "show"
	viewNewForm  = "new-form"
	viewEditForm = "edit-form"
	viewList     = "list"
	viewIndex    = "index"
	viewNotFound = "not-found"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006 15:04")
	},
}

// Renderer renders the named views, each one wrapped in the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	views := []string{viewShow, viewNewForm, viewEditForm, viewList, viewIndex, viewNotFound}

	r := &Renderer{templates: make(map[string]*template.Template, len(views))}
	for _, view := range views {
		t, err := template.New(view).Funcs(templateFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+view+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse view %q: %w", view, err)
		}
		r.templates[view] = t
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("view %q not found", name)
	}

	return t.ExecuteTemplate(w, "layout", data)
}
