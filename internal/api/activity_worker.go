package api

import (
	"context"
	"log"
	"time"

	"recruitdesk/internal/storage"
)

// StartActivityWorker launches the background activity writer.
func (a *API) StartActivityWorker() {
	go a.activityWorker()
	log.Println("[ActivityLog] Worker started")
}

// activityWorker persists activity events from the queue. Failures are
// logged and dropped; the audit trail must never fail a request.
func (a *API) activityWorker() {
	for event := range a.activityQueue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.db.InsertActivity(ctx, &event); err != nil {
			log.Printf("[ActivityLog] Failed to record %q: %v", event.Action, err)
		}
		cancel()
	}
}

// recordActivity enqueues an audit entry without blocking the request.
func (a *API) recordActivity(userID, action, details, entityType, entityID string) {
	event := storage.Activity{
		UserID:     userID,
		Action:     action,
		Details:    details,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	select {
	case a.activityQueue <- event:
	default:
		log.Printf("[ActivityLog] Queue full, dropping activity %q", action)
	}
}
