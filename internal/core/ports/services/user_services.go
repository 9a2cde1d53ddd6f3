package services

import (
	"context"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
)

// KarigarSvcFacade manages the artisan master list.
type KarigarSvcFacade interface {
	CreateKarigar(ctx context.Context, tenantID string, req dto.CreateKarigarRequest, userID string) (*domain.Karigar, error)
	ListKarigars(ctx context.Context, tenantID string) ([]domain.Karigar, error)
	ListKarigarTransactions(ctx context.Context, tenantID, karigarID string) ([]domain.KarigarTransaction, error)
}

// UserSvcFacade is the minimal user collaborator surface.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// TokenSvcFacade issues bearer tokens carrying tenant identity and license
// validity, pre-verified before any request reaches the core.
type TokenSvcFacade interface {
	GenerateToken(user *domain.User) (string, error)
}
