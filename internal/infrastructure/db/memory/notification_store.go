package memory

import (
	"context"
	"sync"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

type NotificationStore struct {
	mu    sync.RWMutex
	items []domain.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{}
}

func (s *NotificationStore) List(_ context.Context, clientID string) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, 0, len(s.items))
	for _, n := range s.items {
		if clientID != "" && n.ClientID != clientID {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *NotificationStore) Create(_ context.Context, n *domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *n)
	return nil
}

func (s *NotificationStore) MarkRead(_ context.Context, clientID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id && s.items[i].ClientID == clientID {
			s.items[i].Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}
