package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	t   *template.Template
	log zerolog.Logger
}

func NewRenderer(log zerolog.Logger) (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"tierLabel": tierLabel,
		"ratings":   func() []int { return []int{1, 2, 3, 4, 5} },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t, log: log}, nil
}

// Page executes the named template. Execution failures are logged rather
// than surfaced; part of the body may already be on the wire by then.
func (r *Renderer) Page(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.t.ExecuteTemplate(w, name, data); err != nil {
		r.log.Error().Str("template", name).Err(err).Msg("template execution failed")
	}
}

func tierLabel(tier string) string {
	if tier == "all" {
		return "All"
	}
	return tier + "€"
}
