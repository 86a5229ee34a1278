package memory

import (
	"context"
	"sync"
	"time"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

type ClientStore struct {
	mu      sync.RWMutex
	clients []domain.Client
}

func NewClientStore() *ClientStore {
	return &ClientStore{}
}

func (s *ClientStore) List(_ context.Context) ([]domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = cloneClient(c)
	}
	return out, nil
}

func (s *ClientStore) FindByID(_ context.Context, id string) (*domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrClientNotFound
	}
	c := cloneClient(s.clients[i])
	return &c, nil
}

func (s *ClientStore) Create(_ context.Context, c *domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = append(s.clients, cloneClient(*c))
	return nil
}

func (s *ClientStore) MarkPaid(_ context.Context, id string, at time.Time) (*domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrClientNotFound
	}
	s.clients[i].MarkPaid(at)
	c := cloneClient(s.clients[i])
	return &c, nil
}

// indexOf must be called with mu held.
func (s *ClientStore) indexOf(id string) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneClient(c domain.Client) domain.Client {
	if c.LastPaymentDate != nil {
		t := *c.LastPaymentDate
		c.LastPaymentDate = &t
	}
	return c
}
