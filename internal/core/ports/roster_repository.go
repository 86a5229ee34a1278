package ports

import (
	"context"
	"time"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

// ClientRepository stores the client roster.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	// MarkPaid sets the client's payment status to paid and returns the updated record.
	MarkPaid(ctx context.Context, id string, at time.Time) (*domain.Client, error)
}

// MediaRepository stores media links. An empty clientID lists everything.
type MediaRepository interface {
	List(ctx context.Context, clientID string) ([]domain.Media, error)
	Create(ctx context.Context, m *domain.Media) error
}

// NotificationRepository stores client notifications. An empty clientID lists everything.
type NotificationRepository interface {
	List(ctx context.Context, clientID string) ([]domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	// MarkRead flags the notification as read when it belongs to clientID.
	// It returns domain.ErrNotificationNotFound otherwise.
	MarkRead(ctx context.Context, clientID, id string) error
}

// PaymentRepository stores the payment log.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) error
}
