package memory

import (
	"context"
	"sync"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

type PaymentStore struct {
	mu    sync.RWMutex
	items []domain.Payment
}

func NewPaymentStore() *PaymentStore {
	return &PaymentStore{}
}

func (s *PaymentStore) List(_ context.Context) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Payment, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *PaymentStore) Create(_ context.Context, p *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *p)
	return nil
}
