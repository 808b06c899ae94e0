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

type LectureHandler struct {
	api      *api.Client
	validate *validator.Validate
}

func NewLectureHandler(client *api.Client) *LectureHandler {
	return &LectureHandler{api: client, validate: validator.New()}
}

type lectureForm struct {
	Title       string `validate:"required"`
	CourseCode  string `validate:"required"`
	Description string
	ScheduledAt string `validate:"required"`
}

func lectureFormFrom(r *http.Request) lectureForm {
	return lectureForm{
		Title:       strings.TrimSpace(r.FormValue("title")),
		CourseCode:  strings.TrimSpace(r.FormValue("courseCode")),
		Description: strings.TrimSpace(r.FormValue("description")),
		ScheduledAt: r.FormValue("scheduledAt"),
	}
}

func (f lectureForm) input() entity.LectureInput {
	return entity.LectureInput{
		Title:       f.Title,
		CourseCode:  f.CourseCode,
		Description: f.Description,
		ScheduledAt: f.ScheduledAt,
	}
}

func (h *LectureHandler) List(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	data := map[string]any{"Title": "Lectures", "Query": query}

	var lectures []entity.Lecture
	if err := h.api.Get(r.Context(), state.Token, "/lectures", &lectures); err != nil {
		slog.Error("fetch lectures", "error", err)
		data["Error"] = "Lectures could not be loaded."
	}
	data["Lectures"] = filterLectures(lectures, query)

	render(w, r, "lectures.html", data)
}

// filterLectures narrows an already fetched list by a case-insensitive
// substring match over title, course code and description.
func filterLectures(lectures []entity.Lecture, query string) []entity.Lecture {
	if query == "" {
		return lectures
	}
	q := strings.ToLower(query)
	filtered := make([]entity.Lecture, 0, len(lectures))
	for _, lec := range lectures {
		if strings.Contains(strings.ToLower(lec.Title), q) ||
			strings.Contains(strings.ToLower(lec.CourseCode), q) ||
			strings.Contains(strings.ToLower(lec.Description), q) {
			filtered = append(filtered, lec)
		}
	}
	return filtered
}

func (h *LectureHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	render(w, r, "lecture_form.html", map[string]any{
		"Title":  "Create New Lecture",
		"Action": "/lectures/create",
		"Submit": "Create Lecture",
		"Form":   lectureForm{},
	})
}

func (h *LectureHandler) Create(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := lectureFormFrom(r)
	data := map[string]any{
		"Title":  "Create New Lecture",
		"Action": "/lectures/create",
		"Submit": "Create Lecture",
		"Form":   form,
	}

	if err := h.validate.Struct(form); err != nil {
		data["Error"] = "Title, course code and scheduled time are required."
		render(w, r, "lecture_form.html", data)
		return
	}

	if err := h.api.Post(r.Context(), state.Token, "/lectures", form.input(), nil); err != nil {
		slog.Error("create lecture", "error", err)
		data["Error"] = "Failed to create lecture. Please try again."
		render(w, r, "lecture_form.html", data)
		return
	}

	http.Redirect(w, r, "/lectures", http.StatusSeeOther)
}

func (h *LectureHandler) Detail(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	id := mux.Vars(r)["id"]

	data := map[string]any{"Title": "Lecture"}

	var lecture entity.Lecture
	if err := h.api.Get(r.Context(), state.Token, "/lectures/"+id, &lecture); err != nil {
		slog.Error("fetch lecture", "id", id, "error", err)
		data["Error"] = "Lecture could not be loaded."
	} else {
		data["Title"] = lecture.Title
		data["Lecture"] = &lecture
	}

	render(w, r, "lecture_detail.html", data)
}

func (h *LectureHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	id := mux.Vars(r)["id"]

	data := map[string]any{
		"Title":  "Edit Lecture",
		"Action": "/lectures/" + id + "/edit",
		"Submit": "Save Changes",
		"Form":   lectureForm{},
	}

	var lecture entity.Lecture
	if err := h.api.Get(r.Context(), state.Token, "/lectures/"+id, &lecture); err != nil {
		slog.Error("fetch lecture", "id", id, "error", err)
		data["Error"] = "Lecture could not be loaded."
	} else {
		data["Form"] = lectureForm{
			Title:       lecture.Title,
			CourseCode:  lecture.CourseCode,
			Description: lecture.Description,
			ScheduledAt: lecture.ScheduledAt,
		}
	}

	render(w, r, "lecture_form.html", data)
}

func (h *LectureHandler) Edit(w http.ResponseWriter, r *http.Request) {
	state, _ := middleware.StateFrom(r.Context())
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	form := lectureFormFrom(r)
	data := map[string]any{
		"Title":  "Edit Lecture",
		"Action": "/lectures/" + id + "/edit",
		"Submit": "Save Changes",
		"Form":   form,
	}

	if err := h.validate.Struct(form); err != nil {
		data["Error"] = "Title, course code and scheduled time are required."
		render(w, r, "lecture_form.html", data)
		return
	}

	if err := h.api.Put(r.Context(), state.Token, "/lectures/"+id, form.input(), nil); err != nil {
		slog.Error("update lecture", "id", id, "error", err)
		data["Error"] = "Failed to update lecture. Please try again."
		render(w, r, "lecture_form.html", data)
		return
	}

	http.Redirect(w, r, "/lectures/"+id, http.StatusSeeOther)
}
