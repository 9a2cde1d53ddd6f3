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

type PgxKarigarRepository struct {
	BaseRepository
}

// newPgxKarigarRepository creates a new repository for karigar data.
func newPgxKarigarRepository(pool *pgxpool.Pool) portsrepo.KarigarRepositoryFacade {
	return &PgxKarigarRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.KarigarRepositoryFacade = (*PgxKarigarRepository)(nil)

func toDomainKarigar(m models.Karigar) domain.Karigar {
	return domain.Karigar{
		KarigarID: m.KarigarID,
		TenantID:  m.TenantID,
		Name:      m.Name,
		Phone:     m.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainKarigarTransaction(m models.KarigarTransaction) domain.KarigarTransaction {
	return domain.KarigarTransaction{
		TransactionID:   m.TransactionID,
		TenantID:        m.TenantID,
		KarigarID:       m.KarigarID,
		Direction:       domain.KarigarDirection(m.Direction),
		MetalType:       domain.MetalType(m.MetalType),
		FineWeight:      m.FineWeight,
		Notes:           m.Notes,
		IsDeleted:       m.IsDeleted,
		StockAdjustment: domain.StockAdjustment{Gold: m.StockAdjustGold, Silver: m.StockAdjustSilver},
		StockRestored:   m.StockRestored,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveKarigar inserts a new karigar.
func (r *PgxKarigarRepository) SaveKarigar(ctx context.Context, karigar domain.Karigar) error {
	query := `
		INSERT INTO karigars (karigar_id, tenant_id, name, phone,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		karigar.KarigarID, karigar.TenantID, karigar.Name, karigar.Phone,
		karigar.CreatedAt, karigar.CreatedBy, karigar.LastUpdatedAt, karigar.LastUpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "karigar", karigar.KarigarID)
	}
	return nil
}

// FindKarigarByID retrieves a karigar by its ID, scoped to the tenant.
func (r *PgxKarigarRepository) FindKarigarByID(ctx context.Context, tenantID, karigarID string) (*domain.Karigar, error) {
	query := `
		SELECT karigar_id, tenant_id, name, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM karigars WHERE tenant_id = $1 AND karigar_id = $2;
	`
	var m models.Karigar
	err := r.db(ctx).QueryRow(ctx, query, tenantID, karigarID).Scan(
		&m.KarigarID, &m.TenantID, &m.Name, &m.Phone,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: karigar %s", apperrors.ErrNotFound, karigarID)
		}
		return nil, fmt.Errorf("failed to find karigar %s: %w", karigarID, err)
	}
	d := toDomainKarigar(m)
	return &d, nil
}

// ListKarigarsByTenant returns the tenant's artisan master list.
func (r *PgxKarigarRepository) ListKarigarsByTenant(ctx context.Context, tenantID string) ([]domain.Karigar, error) {
	query := `
		SELECT karigar_id, tenant_id, name, phone, created_at, created_by, last_updated_at, last_updated_by
		FROM karigars WHERE tenant_id = $1 ORDER BY name ASC;
	`
	rows, err := r.db(ctx).Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list karigars: %w", err)
	}
	defer rows.Close()

	var karigars []domain.Karigar
	for rows.Next() {
		var m models.Karigar
		if err := rows.Scan(
			&m.KarigarID, &m.TenantID, &m.Name, &m.Phone,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan karigar: %w", err)
		}
		karigars = append(karigars, toDomainKarigar(m))
	}
	return karigars, rows.Err()
}

const karigarTxnColumns = `transaction_id, tenant_id, karigar_id, direction, metal_type, fine_weight,
		notes, is_deleted, stock_adjust_gold, stock_adjust_silver, stock_restored,
		created_at, created_by, last_updated_at, last_updated_by`

func scanKarigarTransaction(row pgx.Row) (models.KarigarTransaction, error) {
	var m models.KarigarTransaction
	err := row.Scan(
		&m.TransactionID, &m.TenantID, &m.KarigarID, &m.Direction, &m.MetalType, &m.FineWeight,
		&m.Notes, &m.IsDeleted, &m.StockAdjustGold, &m.StockAdjustSilver, &m.StockRestored,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveKarigarTransaction inserts a new artisan handoff.
func (r *PgxKarigarRepository) SaveKarigarTransaction(ctx context.Context, txn domain.KarigarTransaction) error {
	query := `
		INSERT INTO karigar_transactions (` + karigarTxnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		txn.TransactionID, txn.TenantID, txn.KarigarID, string(txn.Direction), string(txn.MetalType), txn.FineWeight,
		txn.Notes, txn.IsDeleted, txn.StockAdjustment.Gold, txn.StockAdjustment.Silver, txn.StockRestored,
		txn.CreatedAt, txn.CreatedBy, txn.LastUpdatedAt, txn.LastUpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "karigar transaction", txn.TransactionID)
	}
	return nil
}

// FindKarigarTransactionByID retrieves an artisan handoff by its ID.
func (r *PgxKarigarRepository) FindKarigarTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.KarigarTransaction, error) {
	query := `SELECT ` + karigarTxnColumns + ` FROM karigar_transactions
		WHERE tenant_id = $1 AND transaction_id = $2`

	m, err := scanKarigarTransaction(r.db(ctx).QueryRow(ctx, query, tenantID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: karigar transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find karigar transaction %s: %w", transactionID, err)
	}
	d := toDomainKarigarTransaction(m)
	return &d, nil
}

// MarkKarigarTransactionDeleted soft-deletes an artisan handoff.
func (r *PgxKarigarRepository) MarkKarigarTransactionDeleted(ctx context.Context, tenantID, transactionID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE karigar_transactions SET is_deleted = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND transaction_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, transactionID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark karigar transaction %s deleted: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: karigar transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// MarkKarigarTransactionStockRestored flips the double-reversal guard.
func (r *PgxKarigarRepository) MarkKarigarTransactionStockRestored(ctx context.Context, tenantID, transactionID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE karigar_transactions SET stock_restored = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND transaction_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, transactionID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark karigar transaction %s stock restored: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: karigar transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

// ListKarigarTransactions returns the artisan's handoffs, newest first.
func (r *PgxKarigarRepository) ListKarigarTransactions(ctx context.Context, tenantID, karigarID string) ([]domain.KarigarTransaction, error) {
	query := `SELECT ` + karigarTxnColumns + ` FROM karigar_transactions
		WHERE tenant_id = $1 AND karigar_id = $2 ORDER BY created_at DESC`

	rows, err := r.db(ctx).Query(ctx, query, tenantID, karigarID)
	if err != nil {
		return nil, fmt.Errorf("failed to list karigar transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.KarigarTransaction
	for rows.Next() {
		m, err := scanKarigarTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan karigar transaction: %w", err)
		}
		txns = append(txns, toDomainKarigarTransaction(m))
	}
	return txns, rows.Err()
}
