package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

func TestUserStore_LookupIsCaseInsensitive(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &domain.User{ID: "1", Email: "Admin@DogTraining.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	u, err := s.FindByEmail(ctx, "admin@dogtraining.com")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	u, err = s.FindByEmail(ctx, " ADMIN@dogtraining.com")
	require.NoError(t, err)
	assert.Equal(t, "admin@dogtraining.com", u.Email)

	_, err = s.FindByEmail(ctx, "other@dogtraining.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserStore_RejectsDuplicates(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &domain.User{ID: "1", Email: "a@example.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = s.Create(ctx, &domain.User{ID: "2", Email: "A@example.com", Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = s.Create(ctx, &domain.User{ID: "1", Email: "b@example.com", Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUserStore_RejectsUnknownRole(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &domain.User{ID: "1", Email: "a@example.com", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.Create(ctx, &domain.User{ID: "1", Email: "a@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.FindByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserStore_ReturnsCopies(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Create(ctx, &domain.User{ID: "1", Email: "a@example.com", Role: domain.RoleClient})
	require.NoError(t, err)

	u, err := s.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	u.Role = domain.RoleAdmin

	again, err := s.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, again.Role)
}

func TestClientStore_MarkPaid(t *testing.T) {
	s := NewClientStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &domain.Client{ID: "c1", PaymentStatus: domain.PaymentPending}))

	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	c, err := s.MarkPaid(ctx, "c1", at)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, c.PaymentStatus)
	require.NotNil(t, c.LastPaymentDate)

	// mutating the returned copy must not leak into the store
	*c.LastPaymentDate = time.Time{}
	stored, err := s.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, at, *stored.LastPaymentDate)

	_, err = s.MarkPaid(ctx, "missing", at)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientStore_ListKeepsInsertionOrder(t *testing.T) {
	s := NewClientStore()
	ctx := context.Background()
	for _, id := range []string{"c3", "c1", "c2"} {
		require.NoError(t, s.Create(ctx, &domain.Client{ID: id}))
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c3", all[0].ID)
	assert.Equal(t, "c2", all[2].ID)
}

func TestMediaStore_FiltersByClient(t *testing.T) {
	s := NewMediaStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &domain.Media{ID: "m1", ClientID: "c1"}))
	require.NoError(t, s.Create(ctx, &domain.Media{ID: "m2", ClientID: "c2"}))
	require.NoError(t, s.Create(ctx, &domain.Media{ID: "m3", ClientID: "c1"}))

	own, err := s.List(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestNotificationStore_MarkReadRequiresOwner(t *testing.T) {
	s := NewNotificationStore()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, &domain.Notification{ID: "n1", ClientID: "c1"}))

	assert.ErrorIs(t, s.MarkRead(ctx, "c2", "n1"), domain.ErrNotificationNotFound)
	assert.ErrorIs(t, s.MarkRead(ctx, "c1", "n9"), domain.ErrNotificationNotFound)
	require.NoError(t, s.MarkRead(ctx, "c1", "n1"))

	own, err := s.List(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.True(t, own[0].Read)
}

func TestPaymentStore_ConcurrentAppends(t *testing.T) {
	s := NewPaymentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Create(ctx, &domain.Payment{ID: fmt.Sprintf("p%d", i), ClientID: "c1"})
		}(i)
	}
	wg.Wait()

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
