package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	portssvc "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/services"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/dto"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/ids"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/middleware"
)

type karigarService struct {
	karigarRepo portsrepo.KarigarRepositoryFacade
}

// NewKarigarService creates a new KarigarService.
func NewKarigarService(repos *portsrepo.RepositoryProvider) portssvc.KarigarSvcFacade {
	return &karigarService{karigarRepo: repos.KarigarRepo}
}

var _ portssvc.KarigarSvcFacade = (*karigarService)(nil)

// CreateKarigar registers an artisan.
func (s *karigarService) CreateKarigar(ctx context.Context, tenantID string, req dto.CreateKarigarRequest, userID string) (*domain.Karigar, error) {
	now := time.Now().UTC()
	karigar := &domain.Karigar{
		KarigarID: ids.New(),
		TenantID:  tenantID,
		Name:      req.Name,
		Phone:     req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.karigarRepo.SaveKarigar(ctx, *karigar); err != nil {
		return nil, err
	}
	middleware.GetLoggerFromCtx(ctx).Info("Karigar created", slog.String("karigar_id", karigar.KarigarID))
	return karigar, nil
}

// ListKarigars returns the tenant's artisan master list.
func (s *karigarService) ListKarigars(ctx context.Context, tenantID string) ([]domain.Karigar, error) {
	return s.karigarRepo.ListKarigarsByTenant(ctx, tenantID)
}

// ListKarigarTransactions returns the artisan's handoffs, newest first.
func (s *karigarService) ListKarigarTransactions(ctx context.Context, tenantID, karigarID string) ([]domain.KarigarTransaction, error) {
	if _, err := s.karigarRepo.FindKarigarByID(ctx, tenantID, karigarID); err != nil {
		return nil, err
	}
	return s.karigarRepo.ListKarigarTransactions(ctx, tenantID, karigarID)
}
