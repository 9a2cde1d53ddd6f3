package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/apperrors"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	portsrepo "github.com/Nikhilrkatigar/gold-silver-backend/internal/core/ports/repositories"
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &PgxStockRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.StockRepositoryFacade = (*PgxStockRepository)(nil)

func toDomainStock(m models.Stock) domain.Stock {
	return domain.Stock{
		TenantID:   m.TenantID,
		Gold:       m.Gold,
		Silver:     m.Silver,
		CashInHand: m.CashInHand,
		GoldRate:   m.GoldRate,
		SilverRate: m.SilverRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// EnsureStock lazily creates the tenant's zero-valued stock row. Losing the
// creation race to a concurrent request is fine; the existing row wins.
func (r *PgxStockRepository) EnsureStock(ctx context.Context, tenantID, createdBy string) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO stocks (tenant_id, gold, silver, cash_in_hand, gold_rate, silver_rate,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, 0, 0, 0, 0, 0, $2, $3, $2, $3)
		ON CONFLICT (tenant_id) DO NOTHING;
	`
	if _, err := r.db(ctx).Exec(ctx, query, tenantID, now, createdBy); err != nil {
		return fmt.Errorf("failed to ensure stock for tenant %s: %w", tenantID, err)
	}
	return nil
}

// FindStockByTenant retrieves the tenant's stock row.
func (r *PgxStockRepository) FindStockByTenant(ctx context.Context, tenantID string) (*domain.Stock, error) {
	query := `
		SELECT tenant_id, gold, silver, cash_in_hand, gold_rate, silver_rate,
			created_at, created_by, last_updated_at, last_updated_by
		FROM stocks WHERE tenant_id = $1;
	`
	var m models.Stock
	err := r.db(ctx).QueryRow(ctx, query, tenantID).Scan(
		&m.TenantID, &m.Gold, &m.Silver, &m.CashInHand, &m.GoldRate, &m.SilverRate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: stock for tenant %s", apperrors.ErrNotFound, tenantID)
		}
		return nil, fmt.Errorf("failed to find stock for tenant %s: %w", tenantID, err)
	}
	d := toDomainStock(m)
	return &d, nil
}

// AdjustMetals applies the signed adjustment in a single conditional update.
// The WHERE clause re-checks non-negativity against the current row, so two
// concurrent deductions cannot both pass a stale check; the loser simply
// matches no row.
func (r *PgxStockRepository) AdjustMetals(ctx context.Context, tenantID string, adj domain.StockAdjustment, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE stocks
		SET gold = gold + $2, silver = silver + $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND gold + $2 >= 0 AND silver + $3 >= 0;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, adj.Gold, adj.Silver, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust stock for tenant %s: %w", tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the row is missing or the guard fired. Distinguish so the
		// caller sees the right error.
		if _, findErr := r.FindStockByTenant(ctx, tenantID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: adjustment gold=%s silver=%s would drive a counter negative",
			apperrors.ErrInsufficientStock, adj.Gold, adj.Silver)
	}
	return nil
}

// AdjustCashInHand moves the free-running cash accumulator; no guard.
func (r *PgxStockRepository) AdjustCashInHand(ctx context.Context, tenantID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE stocks
		SET cash_in_hand = cash_in_hand + $2, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, delta, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust cash in hand for tenant %s: %w", tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stock for tenant %s", apperrors.ErrNotFound, tenantID)
	}
	return nil
}

// UpdateRates stores the informational daily rates.
func (r *PgxStockRepository) UpdateRates(ctx context.Context, tenantID string, goldRate, silverRate decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE stocks
		SET gold_rate = $2, silver_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, goldRate, silverRate, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update rates for tenant %s: %w", tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: stock for tenant %s", apperrors.ErrNotFound, tenantID)
	}
	return nil
}
