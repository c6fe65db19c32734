package media

import (
	"context"
	"io"
	"sync"
)

// MemoryStore keeps uploads in memory. Used in tests and local development.
type MemoryStore struct {
	mu      sync.Mutex
	BaseURL string
	objects map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{BaseURL: baseURL, objects: map[string][]byte{}}
}

func (s *MemoryStore) Put(ctx context.Context, name, contentType string, body io.Reader, size int64) (string, error) {
	if err := CheckFile(contentType, size); err != nil {
		return "", err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	url := s.BaseURL + "/" + ObjectName("testimonials", name)
	s.mu.Lock()
	s.objects[url] = data
	s.mu.Unlock()
	return url, nil
}

func (s *MemoryStore) Remove(ctx context.Context, url string) error {
	s.mu.Lock()
	delete(s.objects, url)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
