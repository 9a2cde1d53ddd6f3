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

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

func toModelLedger(d domain.Ledger) models.Ledger {
	return models.Ledger{
		LedgerID:          d.LedgerID,
		TenantID:          d.TenantID,
		Name:              d.Name,
		Phone:             d.Phone,
		LedgerType:        string(d.LedgerType),
		CashBalance:       d.Balances.CashBalance,
		CreditBalance:     d.Balances.CreditBalance,
		Amount:            d.Balances.Amount,
		GoldFineWeight:    d.Balances.GoldFineWeight,
		SilverFineWeight:  d.Balances.SilverFineWeight,
		OpeningAmount:     d.OpeningBalance.Amount,
		OpeningGoldFine:   d.OpeningBalance.GoldFineWeight,
		OpeningSilverFine: d.OpeningBalance.SilverFineWeight,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainLedger(m models.Ledger) domain.Ledger {
	return domain.Ledger{
		LedgerID:   m.LedgerID,
		TenantID:   m.TenantID,
		Name:       m.Name,
		Phone:      m.Phone,
		LedgerType: domain.LedgerType(m.LedgerType),
		Balances: domain.Balances{
			CashBalance:      m.CashBalance,
			CreditBalance:    m.CreditBalance,
			Amount:           m.Amount,
			GoldFineWeight:   m.GoldFineWeight,
			SilverFineWeight: m.SilverFineWeight,
		},
		OpeningBalance: domain.OpeningBalance{
			Amount:           m.OpeningAmount,
			GoldFineWeight:   m.OpeningGoldFine,
			SilverFineWeight: m.OpeningSilverFine,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const ledgerColumns = `ledger_id, tenant_id, name, phone, ledger_type,
		cash_balance, credit_balance, amount, gold_fine_weight, silver_fine_weight,
		opening_amount, opening_gold_fine, opening_silver_fine,
		created_at, created_by, last_updated_at, last_updated_by`

func scanLedger(row pgx.Row) (models.Ledger, error) {
	var m models.Ledger
	err := row.Scan(
		&m.LedgerID, &m.TenantID, &m.Name, &m.Phone, &m.LedgerType,
		&m.CashBalance, &m.CreditBalance, &m.Amount, &m.GoldFineWeight, &m.SilverFineWeight,
		&m.OpeningAmount, &m.OpeningGoldFine, &m.OpeningSilverFine,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveLedger inserts a new ledger.
func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m := toModelLedger(ledger)

	query := `
		INSERT INTO ledgers (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.LedgerID, m.TenantID, m.Name, m.Phone, m.LedgerType,
		m.CashBalance, m.CreditBalance, m.Amount, m.GoldFineWeight, m.SilverFineWeight,
		m.OpeningAmount, m.OpeningGoldFine, m.OpeningSilverFine,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "ledger", m.LedgerID)
	}
	return nil
}

func (r *PgxLedgerRepository) findLedger(ctx context.Context, tenantID, ledgerID, suffix string) (*domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE tenant_id = $1 AND ledger_id = $2` + suffix

	m, err := scanLedger(r.db(ctx).QueryRow(ctx, query, tenantID, ledgerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: ledger %s", apperrors.ErrNotFound, ledgerID)
		}
		return nil, fmt.Errorf("failed to find ledger %s: %w", ledgerID, err)
	}
	d := toDomainLedger(m)
	return &d, nil
}

// FindLedgerByID retrieves a ledger by its ID, scoped to the tenant.
func (r *PgxLedgerRepository) FindLedgerByID(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error) {
	return r.findLedger(ctx, tenantID, ledgerID, "")
}

// FindLedgerForUpdate locks the ledger row for the enclosing transaction.
// Without one the lock clause is pointless, so it falls back to a plain read.
func (r *PgxLedgerRepository) FindLedgerForUpdate(ctx context.Context, tenantID, ledgerID string) (*domain.Ledger, error) {
	if _, ok := ctx.Value(txCtxKey).(pgx.Tx); !ok {
		return r.findLedger(ctx, tenantID, ledgerID, "")
	}
	return r.findLedger(ctx, tenantID, ledgerID, " FOR UPDATE")
}

// ListLedgersByTenant returns all ledgers for a tenant, newest first.
func (r *PgxLedgerRepository) ListLedgersByTenant(ctx context.Context, tenantID string) ([]domain.Ledger, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE tenant_id = $1 ORDER BY created_at DESC`

	rows, err := r.db(ctx).Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []domain.Ledger
	for rows.Next() {
		m, err := scanLedger(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger: %w", err)
		}
		ledgers = append(ledgers, toDomainLedger(m))
	}
	return ledgers, rows.Err()
}

// UpdateLedgerBalances writes the five balance columns in one statement.
func (r *PgxLedgerRepository) UpdateLedgerBalances(ctx context.Context, tenantID, ledgerID string, balances domain.Balances, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE ledgers
		SET cash_balance = $3, credit_balance = $4, amount = $5,
		    gold_fine_weight = $6, silver_fine_weight = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE tenant_id = $1 AND ledger_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		tenantID, ledgerID,
		balances.CashBalance, balances.CreditBalance, balances.Amount,
		balances.GoldFineWeight, balances.SilverFineWeight,
		updatedAt, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger balances for %s: %w", ledgerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger %s", apperrors.ErrNotFound, ledgerID)
	}
	return nil
}

// DeleteLedger removes a ledger row.
func (r *PgxLedgerRepository) DeleteLedger(ctx context.Context, tenantID, ledgerID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM ledgers WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger %s: %w", ledgerID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger %s", apperrors.ErrNotFound, ledgerID)
	}
	return nil
}
