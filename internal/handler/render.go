package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/csrf"

	"attendadmin/internal/middleware"
	"attendadmin/internal/templates"
)

var funcMap = template.FuncMap{
	"datefmt": formatDate,
}

var pageTemplates = map[string]*template.Template{}

func init() {
	pages := []string{
		"login.html",
		"register.html",
		"dashboard.html",
		"lectures.html",
		"lecture_detail.html",
		"lecture_form.html",
		"students.html",
		"student_form.html",
		"attendance.html",
		"student_report.html",
		"reports.html",
	}
	for _, page := range pages {
		pageTemplates[page] = template.Must(
			template.New("layout.html").Funcs(funcMap).ParseFS(templates.FS, "layout.html", page),
		)
	}
}

// render executes a page inside the layout. The current user and the
// navigation state come from the request, everything else from data.
func render(w http.ResponseWriter, r *http.Request, page string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if state, ok := middleware.StateFrom(r.Context()); ok && state.User != nil {
		data["User"] = state.User
	}
	data["Nav"] = navFor(r.URL.Path)
	data["CSRFField"] = csrf.TemplateField(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates[page].ExecuteTemplate(w, "layout.html", data); err != nil {
		slog.Error("render failed", "page", page, "error", err)
	}
}

// formatDate renders the API's timestamp strings for display. Unparseable
// values pass through untouched.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006 15:04")
		}
	}
	return raw
}
