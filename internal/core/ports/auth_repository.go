package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

// AuthRepository defines persistence for local identity provider accounts.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
