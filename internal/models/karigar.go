package models

import "github.com/shopspring/decimal"

// Karigar represents an artisan master row.
type Karigar struct {
	KarigarID string `db:"karigar_id"`
	TenantID  string `db:"tenant_id"`
	Name      string `db:"name"`
	Phone     string `db:"phone"`
	AuditFields
}

// KarigarTransaction represents an artisan handoff row. Stock-only; there
// is no ledger snapshot.
type KarigarTransaction struct {
	TransactionID string          `db:"transaction_id"`
	TenantID      string          `db:"tenant_id"`
	KarigarID     string          `db:"karigar_id"`
	Direction     string          `db:"direction"`
	MetalType     string          `db:"metal_type"`
	FineWeight    decimal.Decimal `db:"fine_weight"`
	Notes         string          `db:"notes"`
	IsDeleted     bool            `db:"is_deleted"`

	StockAdjustGold   decimal.Decimal `db:"stock_adjust_gold"`
	StockAdjustSilver decimal.Decimal `db:"stock_adjust_silver"`
	StockRestored     bool            `db:"stock_restored"`

	AuditFields
}
