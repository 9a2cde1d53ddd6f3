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

type PgxSettlementRepository struct {
	BaseRepository
}

// newPgxSettlementRepository creates a new repository for settlement data.
func newPgxSettlementRepository(pool *pgxpool.Pool) portsrepo.SettlementRepositoryFacade {
	return &PgxSettlementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SettlementRepositoryFacade = (*PgxSettlementRepository)(nil)

func toModelSettlement(d domain.Settlement) models.Settlement {
	return models.Settlement{
		SettlementID:        d.SettlementID,
		TenantID:            d.TenantID,
		LedgerID:            d.LedgerID,
		Kind:                string(d.Kind),
		Amount:              d.Amount,
		FineGiven:           d.FineGiven,
		MetalRate:           d.MetalRate,
		Target:              string(d.Target),
		Notes:               d.Notes,
		IsDeleted:           d.IsDeleted,
		PreviousLedgerState: toModelSnapshot(d.PreviousLedgerState),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainSettlement(m models.Settlement) domain.Settlement {
	return domain.Settlement{
		SettlementID:        m.SettlementID,
		TenantID:            m.TenantID,
		LedgerID:            m.LedgerID,
		Kind:                domain.SettlementKind(m.Kind),
		Amount:              m.Amount,
		FineGiven:           m.FineGiven,
		MetalRate:           m.MetalRate,
		Target:              domain.SettlementTarget(m.Target),
		Notes:               m.Notes,
		IsDeleted:           m.IsDeleted,
		PreviousLedgerState: toDomainSnapshot(m.PreviousLedgerState),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const settlementColumns = `settlement_id, tenant_id, ledger_id, kind, amount, fine_given,
		metal_rate, target, notes, is_deleted, previous_ledger_state,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSettlement(row pgx.Row) (models.Settlement, error) {
	var m models.Settlement
	var snapshotRaw []byte
	err := row.Scan(
		&m.SettlementID, &m.TenantID, &m.LedgerID, &m.Kind, &m.Amount, &m.FineGiven,
		&m.MetalRate, &m.Target, &m.Notes, &m.IsDeleted, &snapshotRaw,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	m.PreviousLedgerState, err = unmarshalSnapshot(snapshotRaw)
	return m, err
}

// SaveSettlement inserts a new settlement.
func (r *PgxSettlementRepository) SaveSettlement(ctx context.Context, settlement domain.Settlement) error {
	m := toModelSettlement(settlement)
	snapshotJSON, err := marshalSnapshot(m.PreviousLedgerState)
	if err != nil {
		return fmt.Errorf("failed to encode ledger state snapshot: %w", err)
	}

	query := `
		INSERT INTO settlements (` + settlementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err = r.db(ctx).Exec(ctx, query,
		m.SettlementID, m.TenantID, m.LedgerID, m.Kind, m.Amount, m.FineGiven,
		m.MetalRate, m.Target, m.Notes, m.IsDeleted, snapshotJSON,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "settlement", m.SettlementID)
	}
	return nil
}

// FindSettlementByID retrieves a settlement by its ID, scoped to the tenant.
func (r *PgxSettlementRepository) FindSettlementByID(ctx context.Context, tenantID, settlementID string) (*domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE tenant_id = $1 AND settlement_id = $2`

	m, err := scanSettlement(r.db(ctx).QueryRow(ctx, query, tenantID, settlementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: settlement %s", apperrors.ErrNotFound, settlementID)
		}
		return nil, fmt.Errorf("failed to find settlement %s: %w", settlementID, err)
	}
	d := toDomainSettlement(m)
	return &d, nil
}

// MarkSettlementDeleted soft-deletes a settlement.
func (r *PgxSettlementRepository) MarkSettlementDeleted(ctx context.Context, tenantID, settlementID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE settlements SET is_deleted = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND settlement_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, settlementID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark settlement %s deleted: %w", settlementID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: settlement %s", apperrors.ErrNotFound, settlementID)
	}
	return nil
}

// ListActiveSettlementsByLedger returns non-deleted settlements in creation order.
func (r *PgxSettlementRepository) ListActiveSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements
		WHERE tenant_id = $1 AND ledger_id = $2 AND is_deleted = FALSE ORDER BY created_at ASC`

	rows, err := r.db(ctx).Query(ctx, query, tenantID, ledgerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []domain.Settlement
	for rows.Next() {
		m, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, toDomainSettlement(m))
	}
	return settlements, rows.Err()
}

// CountSettlementsByLedger counts all of the ledger's settlements.
func (r *PgxSettlementRepository) CountSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	var count int64
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM settlements WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count settlements: %w", err)
	}
	return count, nil
}

// DeleteSettlementsByLedger hard-deletes all of the ledger's settlements.
func (r *PgxSettlementRepository) DeleteSettlementsByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	tag, err := r.db(ctx).Exec(ctx,
		`DELETE FROM settlements WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete settlements for ledger %s: %w", ledgerID, err)
	}
	return tag.RowsAffected(), nil
}
