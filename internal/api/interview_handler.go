package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"recruitdesk/internal/storage"
)

// ListInterviewsHandler lists interviews visible to the caller
// @Summary List interviews
// @Description List interviews soonest first, optionally restricted to one candidate. Recruiters see only interviews they scheduled.
// @Tags interviews
// @Produce json
// @Param candidateId query string false "Candidate ID"
// @Success 200 {object} map[string]interface{}
// @Router /interviews [get]
func (a *API) ListInterviewsHandler(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	filter := storage.InterviewFilter{
		CandidateID: r.URL.Query().Get("candidateId"),
	}
	if !p.IsAdmin() {
		filter.ScheduledByID = p.UserID
	}

	interviews, err := a.db.ListInterviews(r.Context(), filter)
	if err != nil {
		log.Printf("List interviews failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch interviews")
		return
	}
	if interviews == nil {
		interviews = []*storage.Interview{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"interviews": interviews})
}

type interviewRequest struct {
	CandidateID string                  `json:"candidateId"`
	Type        storage.InterviewType   `json:"type"`
	ScheduledAt time.Time               `json:"scheduledAt"`
	Round       int                     `json:"round"`
	Duration    int                     `json:"duration"`
	Location    string                  `json:"location"`
	Notes       string                  `json:"notes"`
	Feedback    string                  `json:"feedback"`
	Rating      *int                    `json:"rating"`
	Result      storage.InterviewResult `json:"result"`
}

// CreateInterviewHandler schedules an interview
// @Summary Schedule interview
// @Description Schedule an interview for a candidate. Candidates in APPLIED or SCREENING move to INTERVIEW.
// @Tags interviews
// @Accept json
// @Produce json
// @Param interview body interviewRequest true "Interview"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /interviews [post]
func (a *API) CreateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CandidateID == "" || req.ScheduledAt.IsZero() {
		writeError(w, http.StatusBadRequest, "Candidate and scheduled time are required")
		return
	}
	if req.ScheduledAt.Before(time.Now()) {
		writeError(w, http.StatusBadRequest, "Cannot schedule interview in the past")
		return
	}

	candidate, ok := a.loadCandidateChecked(w, r, req.CandidateID)
	if !ok {
		return
	}

	interview := &storage.Interview{
		CandidateID:   candidate.ID,
		ScheduledByID: p.UserID,
		ScheduledAt:   req.ScheduledAt,
		Type:          req.Type,
		Round:         req.Round,
		Duration:      req.Duration,
		Location:      req.Location,
		Notes:         req.Notes,
	}
	if err := a.db.CreateInterview(r.Context(), interview); err != nil {
		log.Printf("Create interview failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create interview")
		return
	}

	// Scheduling an interview advances early-stage candidates.
	if candidate.Status == storage.StatusApplied || candidate.Status == storage.StatusScreening {
		if err := a.db.UpdateCandidateStatus(r.Context(), candidate.ID, storage.StatusInterview); err != nil {
			log.Printf("Status bump failed for candidate %s: %v", candidate.ID, err)
		}
	}

	a.recordActivity(p.UserID, fmt.Sprintf("scheduled %s interview", interview.Type),
		candidate.Name, "interview", interview.ID)

	writeJSON(w, http.StatusCreated, map[string]interface{}{"interview": interview})
}

// UpdateInterviewHandler reschedules or records the outcome of an interview
// @Summary Update interview
// @Tags interviews
// @Accept json
// @Produce json
// @Param id path string true "Interview ID"
// @Param interview body interviewRequest true "Updated fields"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /interviews/{id} [put]
func (a *API) UpdateInterviewHandler(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	interview, err := a.db.GetInterview(r.Context(), r.PathValue("id"))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Interview not found")
		return
	}
	if err != nil {
		log.Printf("Get interview failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch interview")
		return
	}
	if !p.IsAdmin() && interview.ScheduledByID != p.UserID {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if !req.ScheduledAt.IsZero() {
		interview.ScheduledAt = req.ScheduledAt
	}
	if req.Type != "" {
		interview.Type = req.Type
	}
	if req.Round != 0 {
		interview.Round = req.Round
	}
	if req.Duration != 0 {
		interview.Duration = req.Duration
	}
	if req.Location != "" {
		interview.Location = req.Location
	}
	if req.Notes != "" {
		interview.Notes = req.Notes
	}
	if req.Feedback != "" {
		interview.Feedback = req.Feedback
	}
	if req.Rating != nil {
		interview.Rating = req.Rating
	}
	if req.Result != "" {
		interview.Result = req.Result
	}

	if err := a.db.UpdateInterview(r.Context(), interview); err != nil {
		log.Printf("Update interview failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update interview")
		return
	}

	a.recordActivity(p.UserID, "updated interview", interview.Candidate.Name, "interview", interview.ID)

	writeJSON(w, http.StatusOK, map[string]interface{}{"interview": interview})
}
