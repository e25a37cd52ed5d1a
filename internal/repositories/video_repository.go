package repositories

import (
	"context"
	"errors"

	"github.com/vidfriends/vidthumbs/internal/models"
)

var (
	// ErrNotFound is returned when no video row matches the requested id.
	ErrNotFound = errors.New("video not found")
	// ErrConflict is returned when a video with the same id already exists.
	ErrConflict = errors.New("video already exists")
)

// VideoRepository exposes data access for video metadata records.
type VideoRepository interface {
	Create(ctx context.Context, video models.Video) error
	Get(ctx context.Context, id string) (models.Video, error)
	Update(ctx context.Context, video models.Video) error
}
