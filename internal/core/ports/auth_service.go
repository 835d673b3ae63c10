package ports

import (
	"context"

	"github.com/spacehub/booking-portal/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
