package ports

import (
	"context"
	"time"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

// CreateClientInput carries the roster form fields.
type CreateClientInput struct {
	Name    string
	Email   string
	DogName string
	Phone   string
	Plan    string
	Status  string
}

// CreateMediaInput carries a media link to share with a client.
type CreateMediaInput struct {
	ClientID   string
	Type       string
	URL        string
	Title      string
	UploadDate time.Time // optional, defaults to now
}

// CreateNotificationInput carries a message for a client.
type CreateNotificationInput struct {
	ClientID string
	Message  string
	Type     string
}

// RecordPaymentInput marks a client's fee as paid.
type RecordPaymentInput struct {
	ClientID   string
	Date       time.Time // optional, defaults to now
	RecordedBy string
}

type ClientService interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, in CreateClientInput) (*domain.Client, error)
}

type MediaService interface {
	ListMedia(ctx context.Context) ([]domain.Media, error)
	ListClientMedia(ctx context.Context, clientID string) ([]domain.Media, error)
	CreateMedia(ctx context.Context, in CreateMediaInput) (*domain.Media, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	ListClientNotifications(ctx context.Context, clientID string) ([]domain.Notification, error)
	CreateNotification(ctx context.Context, in CreateNotificationInput) (*domain.Notification, error)
	MarkRead(ctx context.Context, clientID, notificationID string) error
}

type PaymentService interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	RecordPayment(ctx context.Context, in RecordPaymentInput) (*domain.Payment, error)
}
