package app

import (
	"github.com/vidfriends/vidthumbs/internal/auth"
	"github.com/vidfriends/vidthumbs/internal/config"
	"github.com/vidfriends/vidthumbs/internal/db"
	"github.com/vidfriends/vidthumbs/internal/handlers"
	"github.com/vidfriends/vidthumbs/internal/middleware"
	"github.com/vidfriends/vidthumbs/internal/repositories"
	"github.com/vidfriends/vidthumbs/internal/thumbnails"
)

// buildDependencies wires together concrete implementations used by the HTTP handlers.
func buildDependencies(pool db.Pool, cfg config.Config) handlers.Dependencies {
	store := thumbnails.NewMemoryStore()

	service := &thumbnails.Service{
		Videos:   repositories.NewPostgresVideoRepository(pool),
		Store:    store,
		Identity: auth.NewJWTVerifier(cfg.JWTSecret),
		Host:     cfg.Host,
		Port:     cfg.AppPort,
	}

	return handlers.Dependencies{
		Thumbnails:     service,
		ThumbnailCount: store,
		UploadLimiter:  middleware.NewUploadLimiter(cfg.UploadRateLimit),
	}
}
