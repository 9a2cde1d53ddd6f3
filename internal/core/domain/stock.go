package domain

import "github.com/shopspring/decimal"

// Stock is the per-tenant singleton of physical metal counters plus the
// informational daily rates. Gold and silver must never go negative;
// CashInHand is a free-running signed accumulator of non-sale cash outflow.
type Stock struct {
	TenantID   string          `json:"tenantID"`
	Gold       decimal.Decimal `json:"gold"`
	Silver     decimal.Decimal `json:"silver"`
	CashInHand decimal.Decimal `json:"cashInHand"`
	GoldRate   decimal.Decimal `json:"goldRate"`
	SilverRate decimal.Decimal `json:"silverRate"`
	AuditFields
}

// StockAdjustment is the signed delta a record applied to the tenant's metal
// counters, persisted alongside the record so the exact inverse can be
// replayed on reversal. Negative values mean stock was deducted.
type StockAdjustment struct {
	Gold   decimal.Decimal `json:"gold"`
	Silver decimal.Decimal `json:"silver"`
}

// IsZero reports whether the adjustment touches neither counter.
func (a StockAdjustment) IsZero() bool {
	return a.Gold.IsZero() && a.Silver.IsZero()
}

// Inverse returns the adjustment that exactly undoes a.
func (a StockAdjustment) Inverse() StockAdjustment {
	return StockAdjustment{Gold: a.Gold.Neg(), Silver: a.Silver.Neg()}
}

// Add combines two adjustments into one.
func (a StockAdjustment) Add(b StockAdjustment) StockAdjustment {
	return StockAdjustment{Gold: a.Gold.Add(b.Gold), Silver: a.Silver.Add(b.Silver)}
}
