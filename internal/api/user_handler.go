package api

import (
	"log"
	"net/http"

	"recruitdesk/internal/storage"
)

// ListRecruitersHandler returns the active recruiter directory
// @Summary List recruiters
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /users/recruiters [get]
func (a *API) ListRecruitersHandler(w http.ResponseWriter, r *http.Request) {
	recruiters, err := a.db.ListRecruiters(r.Context())
	if err != nil {
		log.Printf("List recruiters failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch recruiters")
		return
	}
	if recruiters == nil {
		recruiters = []*storage.User{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"recruiters": recruiters})
}
