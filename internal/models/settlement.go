package models

import "github.com/shopspring/decimal"

// Settlement represents a standalone cash/metal settlement row.
type Settlement struct {
	SettlementID string          `db:"settlement_id"`
	TenantID     string          `db:"tenant_id"`
	LedgerID     string          `db:"ledger_id"`
	Kind         string          `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	FineGiven    decimal.Decimal `db:"fine_given"`
	MetalRate    decimal.Decimal `db:"metal_rate"`
	Target       string          `db:"target"`
	Notes        string          `db:"notes"`
	IsDeleted    bool            `db:"is_deleted"`

	PreviousLedgerState *LedgerStateSnapshot `db:"previous_ledger_state"`

	AuditFields
}

// MetalSettlement represents a directional metal settlement row.
type MetalSettlement struct {
	MetalSettlementID string          `db:"metal_settlement_id"`
	TenantID          string          `db:"tenant_id"`
	LedgerID          string          `db:"ledger_id"`
	Direction         string          `db:"direction"`
	MetalType         string          `db:"metal_type"`
	Amount            decimal.Decimal `db:"amount"`
	FineGiven         decimal.Decimal `db:"fine_given"`
	Notes             string          `db:"notes"`
	IsDeleted         bool            `db:"is_deleted"`

	PreviousLedgerState *LedgerStateSnapshot `db:"previous_ledger_state"`
	StockAdjustGold     decimal.Decimal      `db:"stock_adjust_gold"`
	StockAdjustSilver   decimal.Decimal      `db:"stock_adjust_silver"`
	StockRestored       bool                 `db:"stock_restored"`

	AuditFields
}
