package models

import "github.com/shopspring/decimal"

// VoucherItem is one billing line, persisted as part of the voucher's items
// JSONB column.
type VoucherItem struct {
	Name        string          `json:"name"`
	MetalType   string          `json:"metalType"`
	GrossWeight decimal.Decimal `json:"grossWeight"`
	FineWeight  decimal.Decimal `json:"fineWeight"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// LedgerStateSnapshot is the reversal snapshot persisted as a JSONB column:
// the ledger's balances exactly as they were before the record's mutation.
type LedgerStateSnapshot struct {
	CashBalance      decimal.Decimal `json:"cashBalance"`
	CreditBalance    decimal.Decimal `json:"creditBalance"`
	Amount           decimal.Decimal `json:"amount"`
	GoldFineWeight   decimal.Decimal `json:"goldFineWeight"`
	SilverFineWeight decimal.Decimal `json:"silverFineWeight"`
}

// Voucher represents a billing document row.
type Voucher struct {
	VoucherID    string          `db:"voucher_id"`
	TenantID     string          `db:"tenant_id"`
	LedgerID     string          `db:"ledger_id"`
	VoucherNo    int64           `db:"voucher_no"`
	InvoiceNo    string          `db:"invoice_no"`
	VoucherType  string          `db:"voucher_type"`
	PaymentType  string          `db:"payment_type"`
	GSTInvoice   bool            `db:"gst_invoice"`
	Items        []VoucherItem   `db:"items"`
	Total        decimal.Decimal `db:"total"`
	CashReceived decimal.Decimal `db:"cash_received"`
	Adjustments  decimal.Decimal `db:"adjustments"`
	Notes        string          `db:"notes"`
	Status       string          `db:"status"`

	PreviousLedgerState *LedgerStateSnapshot `db:"previous_ledger_state"`
	StockAdjustGold     decimal.Decimal      `db:"stock_adjust_gold"`
	StockAdjustSilver   decimal.Decimal      `db:"stock_adjust_silver"`
	StockRestored       bool                 `db:"stock_restored"`

	AuditFields
}
