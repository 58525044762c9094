package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/palengke-dev/palengke/internal/config"
	"github.com/palengke-dev/palengke/internal/logger"
	"github.com/palengke-dev/palengke/internal/service"
)

// HealthChecker reports whether the backing store can be reached.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	listing service.ListingService
	message service.MessageService
	upload  service.UploadService
	health  HealthChecker
	cfg     *config.Config
}

func New(listing service.ListingService, message service.MessageService, upload service.UploadService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{listing, message, upload, health, cfg}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
