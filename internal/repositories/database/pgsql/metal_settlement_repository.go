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
)

type PgxMetalSettlementRepository struct {
	BaseRepository
}

// newPgxMetalSettlementRepository creates a new repository for metal settlement data.
func newPgxMetalSettlementRepository(pool *pgxpool.Pool) portsrepo.MetalSettlementRepositoryFacade {
	return &PgxMetalSettlementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.MetalSettlementRepositoryFacade = (*PgxMetalSettlementRepository)(nil)

func toModelMetalSettlement(d domain.MetalSettlement) models.MetalSettlement {
	return models.MetalSettlement{
		MetalSettlementID:   d.MetalSettlementID,
		TenantID:            d.TenantID,
		LedgerID:            d.LedgerID,
		Direction:           string(d.Direction),
		MetalType:           string(d.MetalType),
		Amount:              d.Amount,
		FineGiven:           d.FineGiven,
		Notes:               d.Notes,
		IsDeleted:           d.IsDeleted,
		PreviousLedgerState: toModelSnapshot(d.PreviousLedgerState),
		StockAdjustGold:     d.StockAdjustment.Gold,
		StockAdjustSilver:   d.StockAdjustment.Silver,
		StockRestored:       d.StockRestored,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainMetalSettlement(m models.MetalSettlement) domain.MetalSettlement {
	return domain.MetalSettlement{
		MetalSettlementID:   m.MetalSettlementID,
		TenantID:            m.TenantID,
		LedgerID:            m.LedgerID,
		Direction:           domain.MetalSettlementDirection(m.Direction),
		MetalType:           domain.MetalType(m.MetalType),
		Amount:              m.Amount,
		FineGiven:           m.FineGiven,
		Notes:               m.Notes,
		IsDeleted:           m.IsDeleted,
		PreviousLedgerState: toDomainSnapshot(m.PreviousLedgerState),
		StockAdjustment:     domain.StockAdjustment{Gold: m.StockAdjustGold, Silver: m.StockAdjustSilver},
		StockRestored:       m.StockRestored,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const metalSettlementColumns = `metal_settlement_id, tenant_id, ledger_id, direction, metal_type,
		amount, fine_given, notes, is_deleted, previous_ledger_state,
		stock_adjust_gold, stock_adjust_silver, stock_restored,
		created_at, created_by, last_updated_at, last_updated_by`

func scanMetalSettlement(row pgx.Row) (models.MetalSettlement, error) {
	var m models.MetalSettlement
	var snapshotRaw []byte
	err := row.Scan(
		&m.MetalSettlementID, &m.TenantID, &m.LedgerID, &m.Direction, &m.MetalType,
		&m.Amount, &m.FineGiven, &m.Notes, &m.IsDeleted, &snapshotRaw,
		&m.StockAdjustGold, &m.StockAdjustSilver, &m.StockRestored,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	m.PreviousLedgerState, err = unmarshalSnapshot(snapshotRaw)
	return m, err
}

// SaveMetalSettlement inserts a new metal settlement.
func (r *PgxMetalSettlementRepository) SaveMetalSettlement(ctx context.Context, settlement domain.MetalSettlement) error {
	m := toModelMetalSettlement(settlement)
	snapshotJSON, err := marshalSnapshot(m.PreviousLedgerState)
	if err != nil {
		return fmt.Errorf("failed to encode ledger state snapshot: %w", err)
	}

	query := `
		INSERT INTO metal_settlements (` + metalSettlementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = r.db(ctx).Exec(ctx, query,
		m.MetalSettlementID, m.TenantID, m.LedgerID, m.Direction, m.MetalType,
		m.Amount, m.FineGiven, m.Notes, m.IsDeleted, snapshotJSON,
		m.StockAdjustGold, m.StockAdjustSilver, m.StockRestored,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "metal settlement", m.MetalSettlementID)
	}
	return nil
}

// FindMetalSettlementByID retrieves a metal settlement by its ID, scoped to the tenant.
func (r *PgxMetalSettlementRepository) FindMetalSettlementByID(ctx context.Context, tenantID, settlementID string) (*domain.MetalSettlement, error) {
	query := `SELECT ` + metalSettlementColumns + ` FROM metal_settlements
		WHERE tenant_id = $1 AND metal_settlement_id = $2`

	m, err := scanMetalSettlement(r.db(ctx).QueryRow(ctx, query, tenantID, settlementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: metal settlement %s", apperrors.ErrNotFound, settlementID)
		}
		return nil, fmt.Errorf("failed to find metal settlement %s: %w", settlementID, err)
	}
	d := toDomainMetalSettlement(m)
	return &d, nil
}

// MarkMetalSettlementDeleted soft-deletes a metal settlement.
func (r *PgxMetalSettlementRepository) MarkMetalSettlementDeleted(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE metal_settlements SET is_deleted = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND metal_settlement_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, settlementID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark metal settlement %s deleted: %w", settlementID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: metal settlement %s", apperrors.ErrNotFound, settlementID)
	}
	return nil
}

// MarkMetalSettlementStockRestored flips the double-reversal guard.
func (r *PgxMetalSettlementRepository) MarkMetalSettlementStockRestored(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE metal_settlements SET stock_restored = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND metal_settlement_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, settlementID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark metal settlement %s stock restored: %w", settlementID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: metal settlement %s", apperrors.ErrNotFound, settlementID)
	}
	return nil
}

// ListActiveMetalSettlementsByLedger returns non-deleted metal settlements in creation order.
func (r *PgxMetalSettlementRepository) ListActiveMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.MetalSettlement, error) {
	query := `SELECT ` + metalSettlementColumns + ` FROM metal_settlements
		WHERE tenant_id = $1 AND ledger_id = $2 AND is_deleted = FALSE ORDER BY created_at ASC`

	rows, err := r.db(ctx).Query(ctx, query, tenantID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metal settlements: %w", err)
	}
	defer rows.Close()

	var settlements []domain.MetalSettlement
	for rows.Next() {
		m, err := scanMetalSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metal settlement: %w", err)
		}
		settlements = append(settlements, toDomainMetalSettlement(m))
	}
	return settlements, rows.Err()
}

// CountMetalSettlementsByLedger counts all of the ledger's metal settlements.
func (r *PgxMetalSettlementRepository) CountMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	var count int64
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM metal_settlements WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count metal settlements: %w", err)
	}
	return count, nil
}

// DeleteMetalSettlementsByLedger hard-deletes all of the ledger's metal settlements.
func (r *PgxMetalSettlementRepository) DeleteMetalSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	tag, err := r.db(ctx).Exec(ctx,
		`DELETE FROM metal_settlements WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete metal settlements for ledger %s: %w", ledgerID, err)
	}
	return tag.RowsAffected(), nil
}
