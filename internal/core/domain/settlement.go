package domain

import "github.com/shopspring/decimal"

// SettlementKind is the recognized set of standalone balance/metal
// adjustments not tied to a sale.
type SettlementKind string

const (
	AddCash       SettlementKind = "ADD_CASH"
	AddGold       SettlementKind = "ADD_GOLD"
	AddSilver     SettlementKind = "ADD_SILVER"
	MoneyToGold   SettlementKind = "MONEY_TO_GOLD"
	MoneyToSilver SettlementKind = "MONEY_TO_SILVER"
)

// SettlementTarget records which monetary component an ADD_CASH settlement
// actually mutated. The choice is made once, by ChooseSettlementTarget, and
// persisted; replays never re-decide it.
type SettlementTarget string

const (
	TargetCash   SettlementTarget = "CASH"
	TargetCredit SettlementTarget = "CREDIT"
)

// Settlement is a standalone cash or metal adjustment against a ledger.
// Soft-deleted via IsDeleted; deletion is terminal.
type Settlement struct {
	SettlementID string           `json:"settlementID"`
	TenantID     string           `json:"tenantID"`
	LedgerID     string           `json:"ledgerID"`
	Kind         SettlementKind   `json:"kind"`
	Amount       decimal.Decimal  `json:"amount"`
	FineGiven    decimal.Decimal  `json:"fineGiven"`
	MetalRate    decimal.Decimal  `json:"metalRate"`
	Target       SettlementTarget `json:"target"`
	Notes        string           `json:"notes"`
	IsDeleted    bool             `json:"isDeleted"`

	PreviousLedgerState *Balances `json:"previousLedgerState,omitempty"`

	AuditFields
}

// MetalSettlementDirection indicates whether metal (and the matching credit
// amount) flows into or out of the business.
type MetalSettlementDirection string

const (
	Receipt MetalSettlementDirection = "RECEIPT"
	Payment MetalSettlementDirection = "PAYMENT"
)

// MetalSettlement is a metal handoff settled against the ledger's credit
// component, with a matching stock movement: PAYMENT deducts stock, RECEIPT
// restores it.
type MetalSettlement struct {
	MetalSettlementID string                   `json:"metalSettlementID"`
	TenantID          string                   `json:"tenantID"`
	LedgerID          string                   `json:"ledgerID"`
	Direction         MetalSettlementDirection `json:"direction"`
	MetalType         MetalType                `json:"metalType"`
	Amount            decimal.Decimal          `json:"amount"`
	FineGiven         decimal.Decimal          `json:"fineGiven"`
	Notes             string                   `json:"notes"`
	IsDeleted         bool                     `json:"isDeleted"`

	PreviousLedgerState *Balances       `json:"previousLedgerState,omitempty"`
	StockAdjustment     StockAdjustment `json:"stockAdjustment"`
	StockRestored       bool            `json:"stockRestored"`

	AuditFields
}
