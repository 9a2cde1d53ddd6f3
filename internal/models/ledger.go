package models

import "github.com/shopspring/decimal"

// Ledger represents a counterparty's running account row. The balance
// columns are flattened; amount is always cash_balance + credit_balance.
type Ledger struct {
	LedgerID   string `db:"ledger_id"`
	TenantID   string `db:"tenant_id"`
	Name       string `db:"name"`
	Phone      string `db:"phone"`
	LedgerType string `db:"ledger_type"`

	CashBalance      decimal.Decimal `db:"cash_balance"`
	CreditBalance    decimal.Decimal `db:"credit_balance"`
	Amount           decimal.Decimal `db:"amount"`
	GoldFineWeight   decimal.Decimal `db:"gold_fine_weight"`
	SilverFineWeight decimal.Decimal `db:"silver_fine_weight"`

	OpeningAmount     decimal.Decimal `db:"opening_amount"`
	OpeningGoldFine   decimal.Decimal `db:"opening_gold_fine"`
	OpeningSilverFine decimal.Decimal `db:"opening_silver_fine"`

	AuditFields
}
