package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vidfriends/vidthumbs/internal/auth"
	"github.com/vidfriends/vidthumbs/internal/logging"
	"github.com/vidfriends/vidthumbs/internal/thumbnails"
)

const (
	// thumbnailField is the multipart form field carrying the image.
	thumbnailField = "thumbnail"
	// multipartOverhead is the slack allowed on top of MaxUploadSize for
	// boundaries and part headers before the body is cut off.
	multipartOverhead = 1 << 20
)

// ThumbnailHandler serves thumbnail upload and retrieval.
type ThumbnailHandler struct {
	Service ThumbnailService
	Limiter RateLimiter
}

// Upload handles POST /api/thumbnail_upload/{videoID}.
func (h ThumbnailHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Service == nil {
		logger.Error("thumbnail service unavailable")
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "thumbnail service unavailable"})
		return
	}

	if !allowRequest(h.Limiter, r, "thumbnail_upload") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{"error": "too many uploads, slow down"})
		return
	}

	videoID := r.PathValue("videoID")
	if videoID == "" {
		respondError(ctx, w, fmt.Errorf("%w: invalid video ID", thumbnails.ErrBadRequest))
		return
	}
	ctx = logging.With(ctx, "videoId", videoID)

	token, err := auth.BearerToken(r.Header)
	if err != nil {
		respondError(ctx, w, fmt.Errorf("%w: %w", thumbnails.ErrUnauthenticated, err))
		return
	}

	userID, err := h.Service.Authenticate(ctx, token)
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	ctx = logging.With(ctx, "userId", userID)

	r.Body = http.MaxBytesReader(w, r.Body, thumbnails.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(thumbnails.MaxUploadSize); err != nil {
		logging.FromContext(ctx).Warn("parse thumbnail form", "error", err)
		respondError(ctx, w, fmt.Errorf("%w: unable to parse form", thumbnails.ErrBadRequest))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logging.FromContext(ctx).Warn("remove multipart temp files", "error", err)
		}
	}()

	parts := r.MultipartForm.File[thumbnailField]
	if len(parts) == 0 {
		respondError(ctx, w, fmt.Errorf("%w: invalid thumbnail file", thumbnails.ErrBadRequest))
		return
	}

	video, err := h.Service.Upload(ctx, thumbnails.UploadRequest{
		VideoID: videoID,
		UserID:  userID,
		File:    thumbnails.MultipartFile(parts[0]),
	})
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, video)
}

// Get handles GET /api/thumbnails/{videoID}.
func (h ThumbnailHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Service == nil {
		logging.FromContext(ctx).Error("thumbnail service unavailable")
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "thumbnail service unavailable"})
		return
	}

	videoID := r.PathValue("videoID")
	ctx = logging.With(ctx, "videoId", videoID)

	thumb, err := h.Service.Get(ctx, videoID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", thumb.MediaType)
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Length", strconv.Itoa(len(thumb.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(thumb.Data); err != nil {
		logging.FromContext(ctx).Warn("write thumbnail body", "error", err)
	}
}
