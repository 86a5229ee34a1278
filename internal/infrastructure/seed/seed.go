// Package seed loads the demo accounts and roster the dashboard ships with.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
)

const day = 24 * time.Hour

// Targets are the stores seeded by Load.
type Targets struct {
	Users         ports.UserStore
	Clients       ports.ClientRepository
	Media         ports.MediaRepository
	Notifications ports.NotificationRepository
}

type demoUser struct {
	id, email, password, role, name, clientID string
}

var demoUsers = []demoUser{
	{id: "1", email: "admin@dogtraining.com", password: "admin123", role: domain.RoleAdmin, name: "Adalberto Alves"},
	{id: "2", email: "cliente@exemplo.com", password: "cliente123", role: domain.RoleClient, name: "Cliente Exemplo", clientID: "c1"},
}

// Load seeds demo users and, when the roster is empty, demo clients, media
// and notifications. Dates are relative to now. Safe to call on every start.
func Load(ctx context.Context, t Targets, now time.Time, log zerolog.Logger) error {
	now = now.UTC()

	for _, du := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(du.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", du.email, err)
		}
		_, err = t.Users.Create(ctx, &domain.User{
			ID:           du.id,
			Email:        du.email,
			PasswordHash: string(hash),
			Role:         du.role,
			Name:         du.name,
			ClientID:     du.clientID,
		})
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return fmt.Errorf("seed: create user %s: %w", du.email, err)
		}
	}

	existing, err := t.Clients.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list clients: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("clients", len(existing)).Msg("roster already present, skipping demo roster")
		return nil
	}

	for _, c := range demoClients(now) {
		if err := t.Clients.Create(ctx, &c); err != nil {
			return fmt.Errorf("seed: create client %s: %w", c.ID, err)
		}
	}
	for _, m := range demoMedia(now) {
		if err := t.Media.Create(ctx, &m); err != nil {
			return fmt.Errorf("seed: create media %s: %w", m.ID, err)
		}
	}
	for _, n := range demoNotifications(now) {
		if err := t.Notifications.Create(ctx, &n); err != nil {
			return fmt.Errorf("seed: create notification %s: %w", n.ID, err)
		}
	}

	log.Info().Int("users", len(demoUsers)).Msg("demo data seeded")
	return nil
}

func demoClients(now time.Time) []domain.Client {
	paidC1 := now
	paidC3 := now.Add(-7 * day)
	return []domain.Client{
		{ID: "c1", Name: "João Silva", Email: "joao@exemplo.com", DogName: "Rex", Phone: "(11) 98765-4321",
			Plan: domain.PlanPremium, Status: domain.ClientActive, PaymentStatus: domain.PaymentPaid, LastPaymentDate: &paidC1, CreatedAt: now},
		{ID: "c2", Name: "Maria Santos", Email: "maria@exemplo.com", DogName: "Bella", Phone: "(11) 91234-5678",
			Plan: domain.PlanBasic, Status: domain.ClientActive, PaymentStatus: domain.PaymentPending, CreatedAt: now},
		{ID: "c3", Name: "Carlos Oliveira", Email: "carlos@exemplo.com", DogName: "Thor", Phone: "(11) 99876-5432",
			Plan: domain.PlanVIP, Status: domain.ClientActive, PaymentStatus: domain.PaymentPaid, LastPaymentDate: &paidC3, CreatedAt: now},
	}
}

func demoMedia(now time.Time) []domain.Media {
	return []domain.Media{
		{ID: "m1", ClientID: "c1", Type: domain.MediaImage, URL: "https://example.com/image1.jpg",
			Title: "Treinamento de Rex - Semana 1", UploadDate: now.Add(-5 * day)},
		{ID: "m2", ClientID: "c1", Type: domain.MediaVideo, URL: "https://example.com/video1.mp4",
			Title: "Rex aprendendo comandos básicos", UploadDate: now.Add(-3 * day)},
		{ID: "m3", ClientID: "c2", Type: domain.MediaImage, URL: "https://example.com/image2.jpg",
			Title: "Bella - Primeira sessão", UploadDate: now.Add(-2 * day)},
		{ID: "m4", ClientID: "c3", Type: domain.MediaVideo, URL: "https://example.com/video2.mp4",
			Title: "Thor - Treino de agilidade", UploadDate: now.Add(-1 * day)},
	}
}

func demoNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{ID: "n4", ClientID: "c1", Message: "Obrigado pelo pagamento! Seu plano está ativo.",
			Type: domain.NotificationPayment, Date: now.Add(-48 * time.Hour), Read: true},
		{ID: "n2", ClientID: "c2", Message: "Pagamento da mensalidade vencendo em 5 dias",
			Type: domain.NotificationPayment, Date: now.Add(-24 * time.Hour)},
		{ID: "n1", ClientID: "c1", Message: "Nova sessão agendada para sexta-feira às 14h",
			Type: domain.NotificationInfo, Date: now.Add(-2 * time.Hour)},
		{ID: "n3", ClientID: "c3", Message: "Novas fotos do treinamento disponíveis!",
			Type: domain.NotificationMedia, Date: now.Add(-1 * time.Hour)},
	}
}
