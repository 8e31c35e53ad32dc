package api

import (
	"log"
	"net/http"
	"time"

	"recruitdesk/internal/storage"
)

// DashboardStatsHandler returns the dashboard summary
// @Summary Dashboard statistics
// @Description Pipeline counts, today's interview count, recent candidates and activities. Recruiters see only their own data.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dashboard/stats [get]
func (a *API) DashboardStatsHandler(w http.ResponseWriter, r *http.Request) {
	p := principal(r)

	scope := ""
	if !p.IsAdmin() {
		scope = p.UserID
	}

	counts, err := a.db.CountCandidatesByStatus(r.Context(), scope)
	if err != nil {
		log.Printf("Count candidates failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	total := 0
	pipeline := make(map[storage.CandidateStatus]int, len(storage.CandidateStatuses))
	for _, status := range storage.CandidateStatuses {
		pipeline[status] = counts[status]
		total += counts[status]
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	interviewsToday, err := a.db.CountInterviewsBetween(r.Context(), scope, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		log.Printf("Count interviews failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	recentCandidates, err := a.db.RecentCandidates(r.Context(), scope, 5)
	if err != nil {
		log.Printf("Recent candidates failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	recentActivities, err := a.db.RecentActivities(r.Context(), scope, 10)
	if err != nil {
		log.Printf("Recent activities failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"totalCandidates":  total,
		"pipelineByStatus": pipeline,
		"interviewsToday":  interviewsToday,
		"offersMade":       pipeline[storage.StatusOffer],
		"hired":            pipeline[storage.StatusHired],
		"recentCandidates": recentCandidates,
		"recentActivities": recentActivities,
	})
}
