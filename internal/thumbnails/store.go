package thumbnails

import "sync"

// Thumbnail is the stored image for a single video.
type Thumbnail struct {
	VideoID   string
	Data      []byte
	MediaType string
}

// MemoryStore keeps the current thumbnail for each video in process memory.
// Values are replaced whole, so a reader sees either the previous or the new
// thumbnail for a key, never a mix of the two.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Thumbnail
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Thumbnail)}
}

// Get returns the thumbnail stored for videoID. The returned Data must be
// treated as read-only.
func (s *MemoryStore) Get(videoID string) (Thumbnail, bool) {
	s.mu.RLock()
	thumb, ok := s.items[videoID]
	s.mu.RUnlock()
	return thumb, ok
}

// Put replaces the thumbnail for videoID. The store takes ownership of data.
func (s *MemoryStore) Put(videoID string, data []byte, mediaType string) {
	thumb := Thumbnail{VideoID: videoID, Data: data, MediaType: mediaType}

	s.mu.Lock()
	s.items[videoID] = thumb
	s.mu.Unlock()
}

// Len reports how many videos currently have a thumbnail.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
