package handlers

import (
	"context"

	"github.com/vidfriends/vidthumbs/internal/models"
	"github.com/vidfriends/vidthumbs/internal/thumbnails"
)

// ThumbnailService captures the thumbnail workflows exposed over HTTP.
type ThumbnailService interface {
	Authenticate(ctx context.Context, credential string) (string, error)
	Upload(ctx context.Context, req thumbnails.UploadRequest) (models.Video, error)
	Get(ctx context.Context, videoID string) (thumbnails.Thumbnail, error)
}

// ThumbnailCounter reports how many thumbnails are held in memory.
type ThumbnailCounter interface {
	Len() int
}
