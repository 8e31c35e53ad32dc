package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"recruitdesk/internal/storage"
)

// ListNotesHandler returns a candidate's notes
// @Summary List notes
// @Tags notes
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {array} storage.Note
// @Failure 404 {object} map[string]string
// @Router /candidates/{id}/notes [get]
func (a *API) ListNotesHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := a.loadCandidateChecked(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	notes, err := a.db.ListNotes(r.Context(), candidate.ID)
	if err != nil {
		log.Printf("List notes failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	if notes == nil {
		notes = []*storage.Note{}
	}
	writeJSON(w, http.StatusOK, notes)
}

type noteRequest struct {
	Content string `json:"content"`
}

// CreateNoteHandler adds a note to a candidate
// @Summary Add note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param note body noteRequest true "Note content"
// @Success 201 {object} storage.Note
// @Failure 400 {object} map[string]string
// @Router /candidates/{id}/notes [post]
func (a *API) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := a.loadCandidateChecked(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		writeError(w, http.StatusBadRequest, "Note content is required")
		return
	}

	p := principal(r)
	note := &storage.Note{
		CandidateID: candidate.ID,
		AuthorID:    p.UserID,
		Content:     content,
	}
	if err := a.db.CreateNote(r.Context(), note); err != nil {
		log.Printf("Create note failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add note")
		return
	}

	a.recordActivity(p.UserID, "added note", candidate.Name, "candidate", candidate.ID)

	writeJSON(w, http.StatusCreated, note)
}
