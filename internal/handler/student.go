package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"attendadmin/internal/api"
	"attendadmin/internal/entity"
	"attendadmin/internal/middleware"
)

type StudentHandler struct {
	api      *api.Client
	validate *validator.Validate
}

func NewStudentHandler(client *api.Client) *StudentHandler {
	return &StudentHandler{api: client, validate: validator.New()}
}

type studentForm struct {
	StudentID string `validate:"required"`
	Name      string `validate:"required"`
	Email     string `validate:"required,email"`
	Course    string `validate:"required"`
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	data := map[string]any{"Title": "Students", "Query": query}

	var students []entity.Student
	if err := h.api.Get(r.Context(), state.Token, "/students", &students); err != nil {
		slog.Error("fetch students", "error", err)
		data["Error"] = "Students could not be loaded."
	}
	data["Students"] = filterStudents(students, query)

	render(w, r, "students.html", data)
}

// filterStudents narrows an already fetched list by a case-insensitive
// substring match over name, email and matric number.
func filterStudents(students []entity.Student, query string) []entity.Student {
	if query == "" {
		return students
	}
	q := strings.ToLower(query)
	filtered := make([]entity.Student, 0, len(students))
	for _, s := range students {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Email), q) ||
			strings.Contains(strings.ToLower(s.MatricNo), q) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// courseOptions fetches lectures for the course dropdown. A failure only
// degrades the form, it does not block it.
func (h *StudentHandler) courseOptions(r *http.Request, token string) []entity.Lecture {
	var lectures []entity.Lecture
	if err := h.api.Get(r.Context(), token, "/lectures", &lectures); err != nil {
		slog.Error("fetch lectures for course options", "error", err)
	}
	return lectures
}

func (h *StudentHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	render(w, r, "student_form.html", map[string]any{
		"Title":    "Add Student",
		"Form":     studentForm{},
		"Lectures": h.courseOptions(r, state.Token),
	})
}

func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := studentForm{
		StudentID: strings.TrimSpace(r.FormValue("studentId")),
		Name:      strings.TrimSpace(r.FormValue("name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Course:    strings.TrimSpace(r.FormValue("course")),
	}
	data := map[string]any{"Title": "Add Student", "Form": form}

	if err := h.validate.Struct(form); err != nil {
		data["Error"] = "All fields are required and the email must be valid."
		data["Lectures"] = h.courseOptions(r, state.Token)
		render(w, r, "student_form.html", data)
		return
	}

	payload := entity.StudentInput{
		StudentID: form.StudentID,
		Name:      form.Name,
		Email:     form.Email,
		Course:    form.Course,
	}
	if err := h.api.Post(r.Context(), state.Token, "/students", payload, nil); err != nil {
		slog.Error("create student", "error", err)
		data["Error"] = "Failed to create student. Please try again."
		data["Lectures"] = h.courseOptions(r, state.Token)
		render(w, r, "student_form.html", data)
		return
	}

	http.Redirect(w, r, "/students", http.StatusSeeOther)
}

func (h *StudentHandler) Report(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	id := mux.Vars(r)["id"]

	data := map[string]any{"Title": "Attendance Report"}

	var records []entity.AttendanceRecord
	if err := h.api.Get(r.Context(), state.Token, "/attendance/student/"+id+"/report", &records); err != nil {
		slog.Error("fetch attendance report", "student", id, "error", err)
		data["Error"] = "Report could not be loaded."
	}
	data["Records"] = records

	render(w, r, "student_report.html", data)
}

// Overview lists students with links to their reports.
func (h *StudentHandler) Overview(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())

	data := map[string]any{"Title": "Reports"}

	var students []entity.Student
	if err := h.api.Get(r.Context(), state.Token, "/students", &students); err != nil {
		slog.Error("fetch students", "error", err)
		data["Error"] = "Students could not be loaded."
	}
	data["Students"] = students

	render(w, r, "reports.html", data)
}
