package ports

import (
	"context"

	"github.com/gescar/dealership-system/internal/core/domain"
)

// AuthService defines registration, login and token revocation.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the given raw token until its natural expiry.
	Logout(ctx context.Context, rawToken string) error
}
