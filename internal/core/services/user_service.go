package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/ids"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

const defaultLicenseDays = 365

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(repos *portsrepo.RepositoryProvider) portssvc.UserSvcFacade {
	return &userService{userRepo: repos.UserRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser registers a user under a tenant with a bcrypt-hashed password
// and a license expiry derived from the requested day count.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	if existing, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username %s is taken", apperrors.ErrDuplicate, req.Username)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	licenseDays := req.LicenseDays
	if licenseDays <= 0 {
		licenseDays = defaultLicenseDays
	}

	user := &domain.User{
		UserID:           ids.New(),
		TenantID:         req.TenantID,
		Name:             req.Name,
		Username:         req.Username,
		PasswordHash:     string(hash),
		LicenseExpiresAt: now.AddDate(0, 0, licenseDays),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		return nil, err
	}
	logger.Info("User created",
		slog.String("user_id", user.UserID),
		slog.String("tenant_id", user.TenantID),
	)
	return user, nil
}

// AuthenticateUser verifies the credentials and the tenant license. The
// same unauthorized error covers unknown usernames and wrong passwords.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	if !user.LicenseValid(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: license expired on %s", apperrors.ErrForbidden, user.LicenseExpiresAt.Format(time.RFC3339))
	}
	return user, nil
}
