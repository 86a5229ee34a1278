package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// Stores bundles every repository backed by db.
type Stores struct {
	Users         *UserRepository
	Clients       *ClientRepository
	Media         *MediaRepository
	Notifications *NotificationRepository
	Payments      *PaymentRepository
}

func NewStores(db *mongo.Database) *Stores {
	return &Stores{
		Users:         NewUserRepository(db),
		Clients:       NewClientRepository(db),
		Media:         NewMediaRepository(db),
		Notifications: NewNotificationRepository(db),
		Payments:      NewPaymentRepository(db),
	}
}

// EnsureIndexes creates the indexes the repositories rely on.
func (s *Stores) EnsureIndexes(ctx context.Context) error {
	if err := s.Users.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := s.Notifications.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("notification indexes: %w", err)
	}
	return nil
}
