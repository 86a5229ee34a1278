package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

const paymentThanks = "Obrigado pelo pagamento! Seu plano está ativo."

type PaymentService struct {
	payments      ports.PaymentRepository
	clients       ports.ClientRepository
	notifications ports.NotificationRepository
	logger        zerolog.Logger
	now           func() time.Time
}

func NewPaymentService(
	payments ports.PaymentRepository,
	clients ports.ClientRepository,
	notifications ports.NotificationRepository,
	logger zerolog.Logger,
) *PaymentService {
	return &PaymentService{
		payments:      payments,
		clients:       clients,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	items, err := s.payments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return items, nil
}

// RecordPayment appends to the payment log, marks the client as paid and
// sends the client a confirmation notification.
func (s *PaymentService) RecordPayment(ctx context.Context, in ports.RecordPaymentInput) (*domain.Payment, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: clientId is required", domain.ErrValidation)
	}

	now := s.now().UTC()
	paidAt := in.Date
	if paidAt.IsZero() {
		paidAt = now
	}

	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	// The log entry goes first so a failed write leaves the client untouched.
	p := &domain.Payment{
		ID:         newID(),
		ClientID:   in.ClientID,
		PaidAt:     paidAt.UTC(),
		RecordedBy: in.RecordedBy,
		CreatedAt:  now,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		s.logger.Error().Err(err).Str("client_id", in.ClientID).Msg("failed to append payment log")
		return nil, fmt.Errorf("record payment: %w", err)
	}

	client, err := s.clients.MarkPaid(ctx, in.ClientID, paidAt)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	notice := &domain.Notification{
		ID:       newID(),
		ClientID: client.ID,
		Message:  paymentThanks,
		Type:     domain.NotificationPayment,
		Date:     now,
	}
	if err := s.notifications.Create(ctx, notice); err != nil {
		s.logger.Warn().Err(err).Str("client_id", client.ID).Msg("failed to send payment confirmation")
	}

	s.logger.Info().Str("client_id", client.ID).Str("recorded_by", in.RecordedBy).Msg("payment recorded")
	return p, nil
}
