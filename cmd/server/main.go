package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"

	"attendadmin/internal/api"
	"attendadmin/internal/config"
	"attendadmin/internal/handler"
	"attendadmin/internal/middleware"
	"attendadmin/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg := config.Load()

	client := api.NewClient(cfg.APIBaseURL)
	sessions := session.NewManager(client, cfg.SessionKey, cfg.SessionName, cfg.CookieSecure)

	auth := handler.NewAuthHandler(sessions, client)
	dashboard := handler.NewDashboardHandler(client)
	lectures := handler.NewLectureHandler(client)
	students := handler.NewStudentHandler(client)
	attendance := handler.NewAttendanceHandler(client)

	router := mux.NewRouter()

	// Public routes.
	router.HandleFunc("/", handler.RootRedirect(sessions)).Methods(http.MethodGet)
	router.HandleFunc("/login", auth.LoginPage).Methods(http.MethodGet)
	router.HandleFunc("/login", auth.Login).Methods(http.MethodPost)
	router.HandleFunc("/register", auth.RegisterPage).Methods(http.MethodGet)
	router.HandleFunc("/register", auth.Register).Methods(http.MethodPost)
	router.HandleFunc("/logout", auth.Logout).Methods(http.MethodPost)

	// Everything below the gate requires a restored session.
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.RequireSession(sessions))
	protected.HandleFunc("/dashboard", dashboard.Show).Methods(http.MethodGet)
	protected.HandleFunc("/lectures", lectures.List).Methods(http.MethodGet)
	protected.HandleFunc("/lectures/create", lectures.CreatePage).Methods(http.MethodGet)
	protected.HandleFunc("/lectures/create", lectures.Create).Methods(http.MethodPost)
	protected.HandleFunc("/lectures/{id}", lectures.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/lectures/{id}/edit", lectures.EditPage).Methods(http.MethodGet)
	protected.HandleFunc("/lectures/{id}/edit", lectures.Edit).Methods(http.MethodPost)
	protected.HandleFunc("/students", students.List).Methods(http.MethodGet)
	protected.HandleFunc("/students/create", students.CreatePage).Methods(http.MethodGet)
	protected.HandleFunc("/students/create", students.Create).Methods(http.MethodPost)
	protected.HandleFunc("/students/{id}/report", students.Report).Methods(http.MethodGet)
	protected.HandleFunc("/reports", students.Overview).Methods(http.MethodGet)
	protected.HandleFunc("/attendance/{id}", attendance.Page).Methods(http.MethodGet)
	protected.HandleFunc("/attendance/{id}/mark", attendance.Mark).Methods(http.MethodPost)

	protect := csrf.Protect(cfg.CSRFKey, csrf.Secure(cfg.CookieSecure), csrf.Path("/"))

	slog.Info("attendance console listening", "addr", cfg.Addr, "api", cfg.APIBaseURL)
	if err := http.ListenAndServe(cfg.Addr, middleware.RequestLogger(protect(router))); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
