package web

import (
	"bytes"
	"embed"
	"gacha_calculator/internal/model"
	"html/template"
	"net/http"
	"strconv"
)

//go:embed templates/*.html
var templatesFS embed.FS

type pageData struct {
	Title     string
	Notices   []model.Notice
	HasResult bool
	Result    float64
	Histories []model.HistoryEntry
	Memo      *model.Memo
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"percent": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		},
	}
	return template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}

// render рисует страницу целиком в буфер, чтобы ошибка шаблона не оставила половину ответа
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render template failed", "template", name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
