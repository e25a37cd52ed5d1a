package thumbnails

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/vidfriends/vidthumbs/internal/logging"
	"github.com/vidfriends/vidthumbs/internal/models"
	"github.com/vidfriends/vidthumbs/internal/repositories"
)

// MaxUploadSize is the largest thumbnail accepted, in bytes (10 MiB).
const MaxUploadSize int64 = 10 << 20

// VideoStore is the subset of the video metadata repository used here.
type VideoStore interface {
	Get(ctx context.Context, id string) (models.Video, error)
	Update(ctx context.Context, video models.Video) error
}

// IdentityVerifier resolves a bearer credential to a user id.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// Store holds thumbnail bytes keyed by video id.
type Store interface {
	Get(videoID string) (Thumbnail, bool)
	Put(videoID string, data []byte, mediaType string)
}

// File is an uploaded file part.
type File interface {
	Size() int64
	ContentType() string
	Open() (io.ReadCloser, error)
}

// UploadRequest carries an authenticated thumbnail upload.
type UploadRequest struct {
	VideoID string
	UserID  string
	File    File
}

// Service implements thumbnail upload and retrieval on top of a Store and
// the external video metadata and identity collaborators.
type Service struct {
	Videos   VideoStore
	Store    Store
	Identity IdentityVerifier
	Host     string
	Port     int
	NowFunc  func() time.Time
}

// Authenticate resolves the caller behind credential.
func (s *Service) Authenticate(ctx context.Context, credential string) (string, error) {
	if s.Identity == nil {
		return "", errors.New("identity verifier unavailable")
	}
	userID, err := s.Identity.Verify(ctx, credential)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	if userID == "" {
		return "", fmt.Errorf("%w: empty subject", ErrUnauthenticated)
	}
	return userID, nil
}

// Upload validates and stores a thumbnail, then points the video's
// thumbnailURL at it. If the metadata update fails the new bytes stay
// stored and the error is returned.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (models.Video, error) {
	if req.VideoID == "" {
		return models.Video{}, badRequest("invalid video ID")
	}
	if req.UserID == "" {
		return models.Video{}, fmt.Errorf("%w: missing user", ErrUnauthenticated)
	}
	if req.File == nil {
		return models.Video{}, badRequest("invalid thumbnail file")
	}
	if req.File.Size() > MaxUploadSize {
		return models.Video{}, badRequest("thumbnail file is too large")
	}

	ctx, span := logging.StartSpan(ctx, "thumbnails.upload")
	defer span.End()
	logger := logging.FromContext(ctx)
	logger.Info("uploading thumbnail", "videoId", req.VideoID, "userId", req.UserID)

	video, err := s.lookupVideo(ctx, req.VideoID)
	if err != nil {
		return models.Video{}, err
	}

	if video.UserID != req.UserID {
		return models.Video{}, fmt.Errorf("%w: not authorized to upload a thumbnail for this video", ErrForbidden)
	}

	data, err := readFile(req.File)
	if err != nil {
		return models.Video{}, err
	}
	mediaType := req.File.ContentType()

	s.Store.Put(req.VideoID, data, mediaType)

	thumbnailURL := URL(s.Host, s.Port, req.VideoID)
	now := s.now()

	updated := models.Video{
		ID:           req.VideoID,
		Title:        video.Title,
		Description:  video.Description,
		CreatedAt:    video.CreatedAt,
		UpdatedAt:    video.UpdatedAt,
		UserID:       req.UserID,
		ThumbnailURL: &thumbnailURL,
	}
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = now
	}
	if updated.UpdatedAt.IsZero() {
		updated.UpdatedAt = now
	}

	if err := s.Videos.Update(ctx, updated); err != nil {
		logger.Error("thumbnail stored but video update failed", "videoId", req.VideoID, "error", err)
		return models.Video{}, fmt.Errorf("update video %s: %w", req.VideoID, err)
	}

	logger.Info("thumbnail uploaded", "videoId", req.VideoID, "bytes", len(data), "mediaType", mediaType)
	return updated, nil
}

// Get returns the stored thumbnail for an existing video.
func (s *Service) Get(ctx context.Context, videoID string) (Thumbnail, error) {
	if videoID == "" {
		return Thumbnail{}, badRequest("invalid video ID")
	}

	if _, err := s.lookupVideo(ctx, videoID); err != nil {
		return Thumbnail{}, err
	}

	thumb, ok := s.Store.Get(videoID)
	if !ok {
		return Thumbnail{}, ErrThumbnailNotFound
	}
	return thumb, nil
}

func (s *Service) lookupVideo(ctx context.Context, videoID string) (models.Video, error) {
	video, err := s.Videos.Get(ctx, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.Video{}, ErrVideoNotFound
		}
		return models.Video{}, fmt.Errorf("get video %s: %w", videoID, err)
	}
	return video, nil
}

func (s *Service) now() time.Time {
	if s.NowFunc != nil {
		return s.NowFunc()
	}
	return time.Now().UTC()
}

func readFile(f File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, badRequest("unreadable thumbnail file")
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read thumbnail: %w", err)
	}
	if int64(len(data)) > MaxUploadSize {
		return nil, badRequest("thumbnail file is too large")
	}
	return data, nil
}

// MultipartFile adapts a parsed multipart file header to File.
func MultipartFile(fh *multipart.FileHeader) File {
	if fh == nil {
		return nil
	}
	return multipartFile{fh: fh}
}

type multipartFile struct {
	fh *multipart.FileHeader
}

func (m multipartFile) Size() int64 { return m.fh.Size }

func (m multipartFile) ContentType() string { return m.fh.Header.Get("Content-Type") }

func (m multipartFile) Open() (io.ReadCloser, error) { return m.fh.Open() }
