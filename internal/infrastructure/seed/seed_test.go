package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/infrastructure/db/memory"
)

func targets(s *memory.Stores) Targets {
	return Targets{Users: s.Users, Clients: s.Clients, Media: s.Media, Notifications: s.Notifications}
}

func TestLoad_SeedsDemoData(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Load(ctx, targets(stores), now, zerolog.Nop()))

	admin, err := stores.Users.FindByEmail(ctx, "admin@dogtraining.com")
	require.NoError(t, err)
	assert.Equal(t, "1", admin.ID)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	client, err := stores.Users.FindByEmail(ctx, "cliente@exemplo.com")
	require.NoError(t, err)
	assert.Equal(t, "c1", client.ClientID)

	clients, _ := stores.Clients.List(ctx)
	assert.Len(t, clients, 3)

	media, _ := stores.Media.List(ctx, "c1")
	assert.Len(t, media, 2)

	notes, _ := stores.Notifications.List(ctx, "c1")
	assert.Len(t, notes, 2)
}

func TestLoad_Idempotent(t *testing.T) {
	ctx := context.Background()
	stores := memory.NewStores()
	now := time.Now()

	require.NoError(t, Load(ctx, targets(stores), now, zerolog.Nop()))
	require.NoError(t, Load(ctx, targets(stores), now, zerolog.Nop()))

	clients, _ := stores.Clients.List(ctx)
	assert.Len(t, clients, 3)
	media, _ := stores.Media.List(ctx, "")
	assert.Len(t, media, 4)
}
