package repositories

import (
	"context"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
)

// UserRepositoryFacade persists the minimal user/login surface.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
