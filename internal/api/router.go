package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Auth (public)
	mux.HandleFunc("POST /api/auth/login", a.LoginHandler)
	mux.HandleFunc("POST /api/auth/register", a.RegisterHandler)
	mux.HandleFunc("POST /api/auth/forgot-password", a.ForgotPasswordHandler)

	// Candidates
	mux.HandleFunc("GET /api/candidates", a.requireAuth(a.ListCandidatesHandler))
	mux.HandleFunc("POST /api/candidates", a.requireAuth(a.CreateCandidateHandler))
	mux.HandleFunc("GET /api/candidates/{id}", a.requireAuth(a.GetCandidateHandler))
	mux.HandleFunc("PUT /api/candidates/{id}", a.requireAuth(a.UpdateCandidateHandler))
	mux.HandleFunc("DELETE /api/candidates/{id}", a.requireAuth(a.DeleteCandidateHandler))
	mux.HandleFunc("PUT /api/candidates/{id}/status", a.requireAuth(a.UpdateCandidateStatusHandler))
	mux.HandleFunc("GET /api/candidates/{id}/notes", a.requireAuth(a.ListNotesHandler))
	mux.HandleFunc("POST /api/candidates/{id}/notes", a.requireAuth(a.CreateNoteHandler))

	// Interviews
	mux.HandleFunc("GET /api/interviews", a.requireAuth(a.ListInterviewsHandler))
	mux.HandleFunc("POST /api/interviews", a.requireAuth(a.CreateInterviewHandler))
	mux.HandleFunc("PUT /api/interviews/{id}", a.requireAuth(a.UpdateInterviewHandler))

	// Users & dashboard
	mux.HandleFunc("GET /api/users/recruiters", a.requireAuth(a.ListRecruitersHandler))
	mux.HandleFunc("GET /api/dashboard/stats", a.requireAuth(a.DashboardStatsHandler))

	// Resume upload & parsing
	mux.HandleFunc("POST /api/upload/resume", a.requireAuth(a.UploadResumeHandler))

	return mux
}
