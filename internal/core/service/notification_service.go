package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

type NotificationService struct {
	notifications ports.NotificationRepository
	clients       ports.ClientRepository
	logger        zerolog.Logger
	now           func() time.Time
}

func NewNotificationService(notifications ports.NotificationRepository, clients ports.ClientRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, clients: clients, logger: logger, now: time.Now}
}

func (s *NotificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	items, err := s.notifications.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return items, nil
}

// ListClientNotifications returns clientID's notifications, newest first.
func (s *NotificationService) ListClientNotifications(ctx context.Context, clientID string) ([]domain.Notification, error) {
	if clientID == "" {
		return nil, domain.ErrUnauthorized
	}
	items, err := s.notifications.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client notifications: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func (s *NotificationService) CreateNotification(ctx context.Context, in ports.CreateNotificationInput) (*domain.Notification, error) {
	kind := domain.NotificationType(strings.ToLower(strings.TrimSpace(in.Type)))
	if kind == "" {
		kind = domain.NotificationInfo
	}
	switch kind {
	case domain.NotificationInfo, domain.NotificationPayment, domain.NotificationMedia:
	default:
		return nil, fmt.Errorf("%w: unknown notification type %q", domain.ErrValidation, in.Type)
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	n := &domain.Notification{
		ID:       newID(),
		ClientID: in.ClientID,
		Message:  strings.TrimSpace(in.Message),
		Type:     kind,
		Date:     s.now().UTC(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("client_id", in.ClientID).Msg("failed to create notification")
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.logger.Info().Str("notification_id", n.ID).Str("client_id", n.ClientID).Msg("notification sent")
	return n, nil
}

// MarkRead flags a notification as read on behalf of clientID. Notifications
// owned by other clients are reported as not found.
func (s *NotificationService) MarkRead(ctx context.Context, clientID, notificationID string) error {
	if clientID == "" {
		return domain.ErrUnauthorized
	}
	if notificationID == "" {
		return fmt.Errorf("%w: notificationId is required", domain.ErrValidation)
	}
	if err := s.notifications.MarkRead(ctx, clientID, notificationID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}
