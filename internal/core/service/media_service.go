package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

type MediaService struct {
	media         ports.MediaRepository
	clients       ports.ClientRepository
	notifications ports.NotificationRepository
	logger        zerolog.Logger
	now           func() time.Time
}

func NewMediaService(
	media ports.MediaRepository,
	clients ports.ClientRepository,
	notifications ports.NotificationRepository,
	logger zerolog.Logger,
) *MediaService {
	return &MediaService{
		media:         media,
		clients:       clients,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *MediaService) ListMedia(ctx context.Context) ([]domain.Media, error) {
	items, err := s.media.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return items, nil
}

// ListClientMedia returns only the media shared with clientID.
func (s *MediaService) ListClientMedia(ctx context.Context, clientID string) ([]domain.Media, error) {
	if clientID == "" {
		return nil, domain.ErrUnauthorized
	}
	items, err := s.media.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list client media: %w", err)
	}
	return items, nil
}

// CreateMedia shares a link with an existing client and notifies them.
// A failed notification does not undo the media entry.
func (s *MediaService) CreateMedia(ctx context.Context, in ports.CreateMediaInput) (*domain.Media, error) {
	mediaType := domain.MediaType(strings.ToLower(strings.TrimSpace(in.Type)))
	if mediaType != domain.MediaImage && mediaType != domain.MediaVideo {
		return nil, fmt.Errorf("%w: unknown media type %q", domain.ErrValidation, in.Type)
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}

	if _, err := s.clients.FindByID(ctx, in.ClientID); err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}

	uploaded := in.UploadDate
	if uploaded.IsZero() {
		uploaded = s.now()
	}

	m := &domain.Media{
		ID:         newID(),
		ClientID:   in.ClientID,
		Type:       mediaType,
		URL:        strings.TrimSpace(in.URL),
		Title:      strings.TrimSpace(in.Title),
		UploadDate: uploaded.UTC(),
	}
	if err := s.media.Create(ctx, m); err != nil {
		s.logger.Error().Err(err).Str("client_id", in.ClientID).Msg("failed to create media")
		return nil, fmt.Errorf("create media: %w", err)
	}

	notice := &domain.Notification{
		ID:       newID(),
		ClientID: m.ClientID,
		Message:  mediaNotice(m),
		Type:     domain.NotificationMedia,
		Date:     s.now().UTC(),
	}
	if err := s.notifications.Create(ctx, notice); err != nil {
		s.logger.Warn().Err(err).Str("media_id", m.ID).Msg("failed to notify client about new media")
	}

	s.logger.Info().Str("media_id", m.ID).Str("client_id", m.ClientID).Str("type", string(m.Type)).Msg("media shared")
	return m, nil
}

func mediaNotice(m *domain.Media) string {
	kind := "fotos"
	if m.Type == domain.MediaVideo {
		kind = "vídeos"
	}
	if m.Title == "" {
		return fmt.Sprintf("Novos %s do treinamento disponíveis!", kind)
	}
	return fmt.Sprintf("Novos %s do treinamento disponíveis: %s", kind, m.Title)
}
