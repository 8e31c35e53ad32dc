package api

import (
	"log"

	"recruitdesk/internal/auth"
	"recruitdesk/internal/config"
	"recruitdesk/internal/document"
	"recruitdesk/internal/duplicate"
	"recruitdesk/internal/storage"
)

type API struct {
	db         *storage.DB
	tokens     *auth.Manager
	extractor  *document.Extractor
	duplicates *duplicate.Checker

	activityQueue chan storage.Activity // background queue for async activity logging
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	secret := cfg.AuthSecret
	if secret == "" {
		log.Println("Warning: AUTH_SECRET not set, using an insecure default (do not do this in production)")
		secret = "recruitdesk-dev-secret"
	}

	api := &API{
		db:            db,
		tokens:        auth.NewManager(secret, cfg.TokenTTL),
		extractor:     document.NewExtractor(cfg.UploadsDir),
		duplicates:    duplicate.NewChecker(db),
		activityQueue: make(chan storage.Activity, 100), // buffer for 100 activity events
	}

	api.StartActivityWorker()

	return api
}
