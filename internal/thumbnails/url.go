package thumbnails

import (
	"fmt"
	"net/url"
)

// RetrievalPath is the route prefix that serves stored thumbnails.
const RetrievalPath = "/api/thumbnails/"

// URL derives the public retrieval address written into a video's
// thumbnailURL. Clients fetch the image from exactly this value.
func URL(host string, port int, videoID string) string {
	return fmt.Sprintf("http://%s:%d%s%s", host, port, RetrievalPath, url.PathEscape(videoID))
}
