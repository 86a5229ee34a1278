package memory

import (
	"context"
	"sync"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

type MediaStore struct {
	mu    sync.RWMutex
	items []domain.Media
}

func NewMediaStore() *MediaStore {
	return &MediaStore{}
}

func (s *MediaStore) List(_ context.Context, clientID string) ([]domain.Media, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Media, 0, len(s.items))
	for _, m := range s.items {
		if clientID != "" && m.ClientID != clientID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *MediaStore) Create(_ context.Context, m *domain.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *m)
	return nil
}
