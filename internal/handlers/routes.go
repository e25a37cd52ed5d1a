package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{Thumbnails: deps.ThumbnailCount}
	thumbs := ThumbnailHandler{Service: deps.Thumbnails, Limiter: deps.UploadLimiter}

	mux.HandleFunc("/healthz", health.Handle)
	mux.HandleFunc("/api/thumbnail_upload/{videoID}", thumbs.Upload)
	mux.HandleFunc("/api/thumbnails/{videoID}", thumbs.Get)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Thumbnails     ThumbnailService
	ThumbnailCount ThumbnailCounter
	UploadLimiter  RateLimiter
}
