package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

var newID = uuid.NewString

type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger, now: time.Now}
}

func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// CreateClient adds a client to the roster. New clients always start with a
// pending payment and no payment date, whatever the caller sent.
func (s *ClientService) CreateClient(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	plan := strings.ToLower(strings.TrimSpace(in.Plan))
	if plan == "" {
		plan = domain.PlanBasic
	}
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = domain.ClientActive
	}

	switch {
	case strings.TrimSpace(in.Name) == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case strings.TrimSpace(in.Email) == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case strings.TrimSpace(in.DogName) == "":
		return nil, fmt.Errorf("%w: dog name is required", domain.ErrValidation)
	case strings.TrimSpace(in.Phone) == "":
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	case plan != domain.PlanBasic && plan != domain.PlanPremium && plan != domain.PlanVIP:
		return nil, fmt.Errorf("%w: unknown plan %q", domain.ErrValidation, in.Plan)
	case status != domain.ClientActive && status != domain.ClientInactive:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}

	client := &domain.Client{
		ID:            newID(),
		Name:          strings.TrimSpace(in.Name),
		Email:         domain.NormalizeEmail(in.Email),
		DogName:       strings.TrimSpace(in.DogName),
		Phone:         strings.TrimSpace(in.Phone),
		Plan:          plan,
		Status:        status,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		s.logger.Error().Err(err).Msg("failed to create client")
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.logger.Info().Str("client_id", client.ID).Str("plan", client.Plan).Msg("client created")
	return client, nil
}
