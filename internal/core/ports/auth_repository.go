package ports

import (
	"context"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

// UserDirectory looks up accounts. Emails are matched after
// domain.NormalizeEmail has been applied on both sides.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserStore is the directory plus the write side used when seeding accounts.
type UserStore interface {
	UserDirectory
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
