package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"attendadmin/internal/api"
	"attendadmin/internal/entity"
	"attendadmin/internal/middleware"
)

type AttendanceHandler struct {
	api *api.Client
}

func NewAttendanceHandler(client *api.Client) *AttendanceHandler {
	return &AttendanceHandler{api: client}
}

// Page shows the lecture header and every registered student with
// present/absent actions.
func (h *AttendanceHandler) Page(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	id := mux.Vars(r)["id"]

	data := map[string]any{
		"Title":   "Attendance",
		"Message": r.URL.Query().Get("marked"),
	}
	if r.URL.Query().Get("error") != "" {
		data["Error"] = "Failed to mark attendance. Please try again."
	}

	var lecture entity.Lecture
	if err := h.api.Get(r.Context(), state.Token, "/lectures/"+id, &lecture); err != nil {
		slog.Error("fetch lecture", "id", id, "error", err)
		data["Error"] = "Lecture could not be loaded."
	} else {
		data["Title"] = "Attendance: " + lecture.Title
		data["Lecture"] = &lecture
	}

	var students []entity.Student
	if err := h.api.Get(r.Context(), state.Token, "/students", &students); err != nil {
		slog.Error("fetch students", "error", err)
		data["Error"] = "Students could not be loaded."
	}
	data["Students"] = students

	render(w, r, "attendance.html", data)
}

// Mark posts one attendance status and redirects back to the sheet.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	lectureID := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	studentID := r.FormValue("studentId")
	status := r.FormValue("status")
	if studentID == "" || (status != entity.StatusPresent && status != entity.StatusAbsent) {
		http.Error(w, "bad attendance mark", http.StatusBadRequest)
		return
	}

	mark := entity.AttendanceMark{
		LectureID: lectureID,
		StudentID: studentID,
		Status:    status,
	}
	back := "/attendance/" + lectureID
	if err := h.api.Post(r.Context(), state.Token, "/attendance/mark", mark, nil); err != nil {
		slog.Error("mark attendance", "lecture", lectureID, "student", studentID, "error", err)
		http.Redirect(w, r, back+"?error=mark_failed", http.StatusSeeOther)
		return
	}

	q := url.Values{"marked": {"Marked " + status + "."}}
	http.Redirect(w, r, back+"?"+q.Encode(), http.StatusSeeOther)
}
