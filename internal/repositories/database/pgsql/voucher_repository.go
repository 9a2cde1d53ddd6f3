package pgsql

import (
	"context"
	"encoding/json"
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

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

func toModelSnapshot(b *domain.Balances) *models.LedgerStateSnapshot {
	if b == nil {
		return nil
	}
	return &models.LedgerStateSnapshot{
		CashBalance:      b.CashBalance,
		CreditBalance:    b.CreditBalance,
		Amount:           b.Amount,
		GoldFineWeight:   b.GoldFineWeight,
		SilverFineWeight: b.SilverFineWeight,
	}
}

func toDomainSnapshot(s *models.LedgerStateSnapshot) *domain.Balances {
	if s == nil {
		return nil
	}
	return &domain.Balances{
		CashBalance:      s.CashBalance,
		CreditBalance:    s.CreditBalance,
		Amount:           s.Amount,
		GoldFineWeight:   s.GoldFineWeight,
		SilverFineWeight: s.SilverFineWeight,
	}
}

// marshalSnapshot renders the snapshot for the jsonb column, keeping NULL
// for the no-snapshot case so legacy detection stays possible.
func marshalSnapshot(s *models.LedgerStateSnapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func unmarshalSnapshot(raw []byte) (*models.LedgerStateSnapshot, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var s models.LedgerStateSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode ledger state snapshot: %w", err)
	}
	return &s, nil
}

func toModelVoucher(d domain.Voucher) models.Voucher {
	items := make([]models.VoucherItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.VoucherItem{
			Name:        item.Name,
			MetalType:   string(item.MetalType),
			GrossWeight: item.GrossWeight,
			FineWeight:  item.FineWeight,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}
	return models.Voucher{
		VoucherID:           d.VoucherID,
		TenantID:            d.TenantID,
		LedgerID:            d.LedgerID,
		VoucherNo:           d.VoucherNo,
		InvoiceNo:           d.InvoiceNo,
		VoucherType:         string(d.VoucherType),
		PaymentType:         string(d.PaymentType),
		GSTInvoice:          d.GSTInvoice,
		Items:               items,
		Total:               d.Total,
		CashReceived:        d.CashReceived,
		Adjustments:         d.Adjustments,
		Notes:               d.Notes,
		Status:              string(d.Status),
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

func toDomainVoucher(m models.Voucher) domain.Voucher {
	items := make([]domain.VoucherItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = domain.VoucherItem{
			Name:        item.Name,
			MetalType:   domain.MetalType(item.MetalType),
			GrossWeight: item.GrossWeight,
			FineWeight:  item.FineWeight,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}
	return domain.Voucher{
		VoucherID:           m.VoucherID,
		TenantID:            m.TenantID,
		LedgerID:            m.LedgerID,
		VoucherNo:           m.VoucherNo,
		InvoiceNo:           m.InvoiceNo,
		VoucherType:         domain.VoucherType(m.VoucherType),
		PaymentType:         domain.PaymentType(m.PaymentType),
		GSTInvoice:          m.GSTInvoice,
		Items:               items,
		Total:               m.Total,
		CashReceived:        m.CashReceived,
		Adjustments:         m.Adjustments,
		Notes:               m.Notes,
		Status:              domain.VoucherStatus(m.Status),
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

const voucherColumns = `voucher_id, tenant_id, ledger_id, voucher_no, invoice_no,
		voucher_type, payment_type, gst_invoice, items, total, cash_received, adjustments,
		notes, status, previous_ledger_state, stock_adjust_gold, stock_adjust_silver, stock_restored,
		created_at, created_by, last_updated_at, last_updated_by`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	var itemsRaw, snapshotRaw []byte
	err := row.Scan(
		&m.VoucherID, &m.TenantID, &m.LedgerID, &m.VoucherNo, &m.InvoiceNo,
		&m.VoucherType, &m.PaymentType, &m.GSTInvoice, &itemsRaw, &m.Total, &m.CashReceived, &m.Adjustments,
		&m.Notes, &m.Status, &snapshotRaw, &m.StockAdjustGold, &m.StockAdjustSilver, &m.StockRestored,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &m.Items); err != nil {
			return m, fmt.Errorf("failed to decode voucher items: %w", err)
		}
	}
	m.PreviousLedgerState, err = unmarshalSnapshot(snapshotRaw)
	return m, err
}

func voucherArgs(m models.Voucher) ([]any, error) {
	itemsJSON, err := json.Marshal(m.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode voucher items: %w", err)
	}
	snapshotJSON, err := marshalSnapshot(m.PreviousLedgerState)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger state snapshot: %w", err)
	}
	return []any{
		m.VoucherID, m.TenantID, m.LedgerID, m.VoucherNo, m.InvoiceNo,
		m.VoucherType, m.PaymentType, m.GSTInvoice, itemsJSON, m.Total, m.CashReceived, m.Adjustments,
		m.Notes, m.Status, snapshotJSON, m.StockAdjustGold, m.StockAdjustSilver, m.StockRestored,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}, nil
}

// SaveVoucher inserts a new voucher. Unique (tenant_id, voucher_no) and
// (tenant_id, invoice_no) violations surface as ErrConflict.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := toModelVoucher(voucher)
	args, err := voucherArgs(m)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vouchers (` + voucherColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	if _, err := r.db(ctx).Exec(ctx, query, args...); err != nil {
		return mapSaveError(err, "voucher", m.VoucherID)
	}
	return nil
}

// FindVoucherByID retrieves a voucher by its ID, scoped to the tenant.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE tenant_id = $1 AND voucher_id = $2`

	m, err := scanVoucher(r.db(ctx).QueryRow(ctx, query, tenantID, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}
	d := toDomainVoucher(m)
	return &d, nil
}

// UpdateVoucher rewrites an existing voucher keeping its identity.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := toModelVoucher(voucher)
	itemsJSON, err := json.Marshal(m.Items)
	if err != nil {
		return fmt.Errorf("failed to encode voucher items: %w", err)
	}
	snapshotJSON, err := marshalSnapshot(m.PreviousLedgerState)
	if err != nil {
		return fmt.Errorf("failed to encode ledger state snapshot: %w", err)
	}

	query := `
		UPDATE vouchers
		SET invoice_no = $3, voucher_type = $4, payment_type = $5, gst_invoice = $6,
		    items = $7, total = $8, cash_received = $9, adjustments = $10, notes = $11,
		    status = $12, previous_ledger_state = $13,
		    stock_adjust_gold = $14, stock_adjust_silver = $15, stock_restored = $16,
		    last_updated_at = $17, last_updated_by = $18
		WHERE tenant_id = $1 AND voucher_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.TenantID, m.VoucherID,
		m.InvoiceNo, m.VoucherType, m.PaymentType, m.GSTInvoice,
		itemsJSON, m.Total, m.CashReceived, m.Adjustments, m.Notes,
		m.Status, snapshotJSON,
		m.StockAdjustGold, m.StockAdjustSilver, m.StockRestored,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapSaveError(err, "voucher", m.VoucherID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, m.VoucherID)
	}
	return nil
}

// UpdateVoucherStatus moves a voucher between lifecycle states.
func (r *PgxVoucherRepository) UpdateVoucherStatus(ctx context.Context, tenantID, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vouchers SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND voucher_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, voucherID, string(status), updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update voucher status for %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return nil
}

// DeleteVoucher removes a voucher row outright.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, tenantID, voucherID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM vouchers WHERE tenant_id = $1 AND voucher_id = $2`, tenantID, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher %s: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return nil
}

// MarkVoucherStockRestored flips the double-reversal guard.
func (r *PgxVoucherRepository) MarkVoucherStockRestored(ctx context.Context, tenantID, voucherID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE vouchers SET stock_restored = TRUE, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1 AND voucher_id = $2;
	`
	tag, err := r.db(ctx).Exec(ctx, query, tenantID, voucherID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark voucher %s stock restored: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	return nil
}

func (r *PgxVoucherRepository) listVouchers(ctx context.Context, query string, args ...any) ([]domain.Voucher, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher: %w", err)
		}
		vouchers = append(vouchers, toDomainVoucher(m))
	}
	return vouchers, rows.Err()
}

// ListActiveVouchersByLedger returns active vouchers in creation order.
func (r *PgxVoucherRepository) ListActiveVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers
		WHERE tenant_id = $1 AND ledger_id = $2 AND status = 'ACTIVE' ORDER BY created_at ASC`
	return r.listVouchers(ctx, query, tenantID, ledgerID)
}

// ListVouchersByLedger returns all of the ledger's vouchers, newest first.
func (r *PgxVoucherRepository) ListVouchersByLedger(ctx context.Context, tenantID, ledgerID string) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers
		WHERE tenant_id = $1 AND ledger_id = $2 ORDER BY created_at DESC`
	return r.listVouchers(ctx, query, tenantID, ledgerID)
}

// CountVouchersByLedger counts all of the ledger's vouchers.
func (r *PgxVoucherRepository) CountVouchersByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	var count int64
	err := r.db(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM vouchers WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vouchers: %w", err)
	}
	return count, nil
}

// DeleteVouchersByLedger hard-deletes all of the ledger's vouchers.
func (r *PgxVoucherRepository) DeleteVouchersByLedger(ctx context.Context, tenantID, ledgerID string) (int64, error) {
	tag, err := r.db(ctx).Exec(ctx,
		`DELETE FROM vouchers WHERE tenant_id = $1 AND ledger_id = $2`, tenantID, ledgerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vouchers for ledger %s: %w", ledgerID, err)
	}
	return tag.RowsAffected(), nil
}
