package models

import "time"

// Video is the metadata record for an uploaded video. Thumbnail uploads
// rewrite ThumbnailURL and UserID; every other field is owned by the wider
// video service.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	UserID       string    `json:"userID"`
	ThumbnailURL *string   `json:"thumbnailURL,omitempty"`
}
