package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vidfriends/vidthumbs/internal/logging"
	"github.com/vidfriends/vidthumbs/internal/thumbnails"
)

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.FromContext(ctx).Error("encode response body", "status", status, "error", err)
		return
	}

	logger := logging.FromContext(ctx)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", "status", status, "response", payload)
	case status >= http.StatusBadRequest:
		logger.Warn("request returned client error", "status", status, "response", payload)
	}
}

// respondError maps thumbnail error kinds onto HTTP statuses. Anything
// unclassified is reported as a 500 without leaking its message.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.FromContext(ctx).Error("internal error", "error", err)
		message = "internal server error"
	}
	respondJSON(ctx, w, status, map[string]string{"error": message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, thumbnails.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, thumbnails.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, thumbnails.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, thumbnails.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
