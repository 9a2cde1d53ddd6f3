package models

import "github.com/shopspring/decimal"

// Stock represents the per-tenant singleton row of metal counters. The
// non-negativity of gold/silver is enforced by the conditional update in the
// repository, never by a read-then-write.
type Stock struct {
	TenantID   string          `db:"tenant_id"`
	Gold       decimal.Decimal `db:"gold"`
	Silver     decimal.Decimal `db:"silver"`
	CashInHand decimal.Decimal `db:"cash_in_hand"`
	GoldRate   decimal.Decimal `db:"gold_rate"`
	SilverRate decimal.Decimal `db:"silver_rate"`
	AuditFields
}
