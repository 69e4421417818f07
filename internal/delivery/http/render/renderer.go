// Package render implements echo's Renderer over the embedded HTML
// templates. Every page shares the layout template and fills its content
// block.
package render

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

var funcs = template.FuncMap{
	"price": util.FormatPrice,
	"lat": func(s entity.Shop) string {
		return util.FormatCoordinate(s.Latitude())
	},
	"lng": func(s entity.Shop) string {
		return util.FormatCoordinate(s.Longitude())
	},
	"join": strings.Join,
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses the embedded templates. Each page under templates/pages is
// combined with the shared layout.
func New() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list page templates")
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", page)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse template %s", name)
		}
		templates[name] = tmpl
	}

	return &Renderer{templates: templates}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.Errorf("unknown template %q", name)
	}

	return errors.Wrapf(tmpl.ExecuteTemplate(w, "layout", data), "failed to render %s", name)
}
