package domain

import "github.com/shopspring/decimal"

// Karigar is an artisan that metal is handed to or received from for labour.
type Karigar struct {
	KarigarID string `json:"karigarID"`
	TenantID  string `json:"tenantID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AuditFields
}

// KarigarDirection indicates which way metal moved in an artisan handoff.
type KarigarDirection string

const (
	Given    KarigarDirection = "GIVEN"
	Received KarigarDirection = "RECEIVED"
)

// KarigarTransaction records an artisan handoff. Karigars carry no ledger;
// the only effect is on the tenant's stock counters. Soft-deleted.
type KarigarTransaction struct {
	TransactionID string           `json:"transactionID"`
	TenantID      string           `json:"tenantID"`
	KarigarID     string           `json:"karigarID"`
	Direction     KarigarDirection `json:"direction"`
	MetalType     MetalType        `json:"metalType"`
	FineWeight    decimal.Decimal  `json:"fineWeight"`
	Notes         string           `json:"notes"`
	IsDeleted     bool             `json:"isDeleted"`

	StockAdjustment StockAdjustment `json:"stockAdjustment"`
	StockRestored   bool            `json:"stockRestored"`

	AuditFields
}
