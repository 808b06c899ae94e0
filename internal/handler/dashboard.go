package handler

import (
	"log/slog"
	"net/http"

	"attendadmin/internal/api"
	"attendadmin/internal/entity"
	"attendadmin/internal/middleware"
)

type DashboardHandler struct {
	api *api.Client
}

func NewDashboardHandler(client *api.Client) *DashboardHandler {
	return &DashboardHandler{api: client}
}

// Show renders lecture and student counts derived from the fetched lists.
// Attendance counters stay blank: the API has no aggregation endpoint, and
// faking them would be worse than admitting it.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())

	data := map[string]any{
		"Title":         "Dashboard",
		"TotalLectures": 0,
		"TotalStudents": 0,
	}

	var lectures []entity.Lecture
	if err := h.api.Get(r.Context(), state.Token, "/lectures", &lectures); err != nil {
		slog.Error("fetch lectures", "error", err)
		data["Error"] = "Some statistics could not be loaded."
	} else {
		data["TotalLectures"] = len(lectures)
	}

	var students []entity.Student
	if err := h.api.Get(r.Context(), state.Token, "/students", &students); err != nil {
		slog.Error("fetch students", "error", err)
		data["Error"] = "Some statistics could not be loaded."
	} else {
		data["TotalStudents"] = len(students)
	}

	render(w, r, "dashboard.html", data)
}
