package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"recruitdesk/internal/duplicate"
	"recruitdesk/internal/resume"
	"recruitdesk/internal/storage"
)

type candidateRequest struct {
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	Position       string                  `json:"position"`
	Experience     *int                    `json:"experience"`
	CurrentCompany string                  `json:"currentCompany"`
	ExpectedSalary string                  `json:"expectedSalary"`
	Skills         []string                `json:"skills"`
	Source         string                  `json:"source"`
	ResumeURL      string                  `json:"resumeUrl"`
	ResumeText     string                  `json:"resumeText"`
	Status         storage.CandidateStatus `json:"status"`
	RecruiterID    string                  `json:"recruiterId"`
}

// loadCandidateChecked fetches a candidate and enforces ownership:
// recruiters may only touch their own candidates, admins anything.
// Writes the error response itself when returning ok=false.
func (a *API) loadCandidateChecked(w http.ResponseWriter, r *http.Request, id string) (*storage.Candidate, bool) {
	candidate, err := a.db.GetCandidate(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Candidate not found")
		return nil, false
	}
	if err != nil {
		log.Printf("Get candidate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return nil, false
	}

	p := principal(r)
	if !p.IsAdmin() && candidate.RecruiterID != p.UserID {
		writeError(w, http.StatusForbidden, "Forbidden")
		return nil, false
	}
	return candidate, true
}

// checkDuplicates runs the advisory duplicate check. Failures are logged
// and reported as an empty list; a duplicate warning must never block a
// candidate operation.
func (a *API) checkDuplicates(r *http.Request, in duplicate.Input) []duplicate.Match {
	matches, err := a.duplicates.Check(r.Context(), in)
	if err != nil {
		log.Printf("Duplicate check failed: %v", err)
		return nil
	}
	return matches
}

// ListCandidatesHandler lists candidates visible to the caller
// @Summary List candidates
// @Description List candidates, optionally filtered by status and a name/email/position search. Recruiters see only their own candidates.
// @Tags candidates
// @Produce json
// @Param status query string false "Pipeline status"
// @Param search query string false "Substring search"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /candidates [get]
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	filter := storage.CandidateFilter{
		Search: r.URL.Query().Get("search"),
	}
	if !p.IsAdmin() {
		filter.RecruiterID = p.UserID
	}
	if status := r.URL.Query().Get("status"); status != "" && status != "all" {
		filter.Status = storage.CandidateStatus(status)
	}

	candidates, err := a.db.ListCandidates(r.Context(), filter)
	if err != nil {
		log.Printf("List candidates failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidates")
		return
	}
	if candidates == nil {
		candidates = []*storage.Candidate{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"candidates": candidates})
}

// CreateCandidateHandler creates a candidate with an advisory duplicate check
// @Summary Create candidate
// @Description Create a candidate owned by the caller. The response carries any duplicate matches; they never block creation.
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body candidateRequest true "Candidate fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /candidates [post]
func (a *API) CreateCandidateHandler(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	var req candidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	fingerprint := resume.Fingerprint(req.Email, req.Phone, req.Name)

	duplicates := a.checkDuplicates(r, duplicate.Input{
		Email:       req.Email,
		Phone:       req.Phone,
		Name:        req.Name,
		Fingerprint: fingerprint,
	})

	candidate := &storage.Candidate{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		Phone:          req.Phone,
		Position:       req.Position,
		Experience:     req.Experience,
		CurrentCompany: req.CurrentCompany,
		ExpectedSalary: req.ExpectedSalary,
		Skills:         req.Skills,
		Source:         req.Source,
		ResumeURL:      req.ResumeURL,
		ResumeText:     req.ResumeText,
		Fingerprint:    fingerprint,
		RecruiterID:    p.UserID,
		Status:         storage.StatusApplied,
	}
	if err := a.db.CreateCandidate(r.Context(), candidate); err != nil {
		log.Printf("Create candidate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create candidate")
		return
	}

	a.recordActivity(p.UserID, "added a new candidate", candidate.Name, "candidate", candidate.ID)

	response := map[string]interface{}{"candidate": candidate}
	if len(duplicates) > 0 {
		response["duplicates"] = duplicates
		response["duplicateAlert"] = duplicate.FormatAlert(duplicates)
	}
	writeJSON(w, http.StatusCreated, response)
}

// GetCandidateHandler returns one candidate with interviews and notes
// @Summary Get candidate
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /candidates/{id} [get]
func (a *API) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := a.loadCandidateChecked(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	interviews, err := a.db.ListInterviews(r.Context(), storage.InterviewFilter{CandidateID: candidate.ID})
	if err != nil {
		log.Printf("List interviews failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return
	}
	notes, err := a.db.ListNotes(r.Context(), candidate.ID)
	if err != nil {
		log.Printf("List notes failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch candidate")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"candidate":  candidate,
		"interviews": interviews,
		"notes":      notes,
	})
}

// UpdateCandidateHandler updates a candidate and re-checks duplicates
// @Summary Update candidate
// @Description Update candidate fields; the fingerprint is re-derived and duplicates re-checked excluding the candidate itself.
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param candidate body candidateRequest true "Updated fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /candidates/{id} [put]
func (a *API) UpdateCandidateHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := a.loadCandidateChecked(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	var req candidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	candidate.Name = req.Name
	candidate.Email = strings.ToLower(req.Email)
	candidate.Phone = req.Phone
	candidate.Position = req.Position
	candidate.Experience = req.Experience
	candidate.CurrentCompany = req.CurrentCompany
	candidate.ExpectedSalary = req.ExpectedSalary
	candidate.Skills = req.Skills
	candidate.Source = req.Source
	if req.Status != "" {
		if !req.Status.Valid() {
			writeError(w, http.StatusBadRequest, "Unknown status")
			return
		}
		candidate.Status = req.Status
	}
	if req.RecruiterID != "" && principal(r).IsAdmin() {
		candidate.RecruiterID = req.RecruiterID
	}
	candidate.Fingerprint = resume.Fingerprint(candidate.Email, candidate.Phone, candidate.Name)

	if err := a.db.UpdateCandidate(r.Context(), candidate); err != nil {
		log.Printf("Update candidate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}

	// Re-check duplicates, excluding this record so it does not match itself.
	duplicates := a.checkDuplicates(r, duplicate.Input{
		Email:              candidate.Email,
		Phone:              candidate.Phone,
		Name:               candidate.Name,
		Fingerprint:        candidate.Fingerprint,
		ExcludeCandidateID: candidate.ID,
	})

	a.recordActivity(principal(r).UserID, "updated candidate", candidate.Name, "candidate", candidate.ID)

	response := map[string]interface{}{"candidate": candidate}
	if len(duplicates) > 0 {
		response["duplicates"] = duplicates
		response["duplicateAlert"] = duplicate.FormatAlert(duplicates)
	}
	writeJSON(w, http.StatusOK, response)
}

// DeleteCandidateHandler removes a candidate
// @Summary Delete candidate
// @Tags candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /candidates/{id} [delete]
func (a *API) DeleteCandidateHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := a.loadCandidateChecked(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	if err := a.db.DeleteCandidate(r.Context(), candidate.ID); err != nil {
		log.Printf("Delete candidate failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete candidate")
		return
	}

	a.recordActivity(principal(r).UserID, "deleted candidate", candidate.Name, "candidate", candidate.ID)

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type statusRequest struct {
	Status storage.CandidateStatus `json:"status"`
}

// UpdateCandidateStatusHandler moves a candidate through the pipeline
// @Summary Update candidate status
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /candidates/{id}/status [put]
func (a *API) UpdateCandidateStatusHandler(w http.ResponseWriter, r *http.Request) {
	candidate, ok := a.loadCandidateChecked(w, r, r.PathValue("id"))
	if !ok {
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "Unknown status")
		return
	}

	oldStatus := candidate.Status
	if err := a.db.UpdateCandidateStatus(r.Context(), candidate.ID, req.Status); err != nil {
		log.Printf("Update status failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update candidate status")
		return
	}
	candidate.Status = req.Status

	a.recordActivity(principal(r).UserID,
		fmt.Sprintf("moved candidate from %s to %s", oldStatus, req.Status),
		candidate.Name, "candidate", candidate.ID)

	writeJSON(w, http.StatusOK, map[string]interface{}{"candidate": candidate})
}
