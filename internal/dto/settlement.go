package dto

import (
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSettlementRequest creates a standalone cash/metal settlement.
type CreateSettlementRequest struct {
	LedgerID  string           `json:"ledgerID" binding:"required"`
	Kind      string           `json:"kind" binding:"required,oneof=ADD_CASH ADD_GOLD ADD_SILVER MONEY_TO_GOLD MONEY_TO_SILVER"`
	Amount    *decimal.Decimal `json:"amount"`
	FineGiven *decimal.Decimal `json:"fineGiven"`
	MetalRate *decimal.Decimal `json:"metalRate"`
	Notes     string           `json:"notes"`
}

// SettlementResponse is the API shape of a settlement.
type SettlementResponse struct {
	SettlementID string          `json:"settlementID"`
	LedgerID     string          `json:"ledgerID"`
	Kind         string          `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	FineGiven    decimal.Decimal `json:"fineGiven"`
	MetalRate    decimal.Decimal `json:"metalRate"`
	Target       string          `json:"target,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToSettlementResponse converts a domain.Settlement to its API shape.
func ToSettlementResponse(s *domain.Settlement) SettlementResponse {
	return SettlementResponse{
		SettlementID: s.SettlementID,
		LedgerID:     s.LedgerID,
		Kind:         string(s.Kind),
		Amount:       s.Amount,
		FineGiven:    s.FineGiven,
		MetalRate:    s.MetalRate,
		Target:       string(s.Target),
		CreatedAt:    s.CreatedAt,
	}
}

// CreateMetalSettlementRequest creates a directional metal settlement.
type CreateMetalSettlementRequest struct {
	LedgerID  string           `json:"ledgerID" binding:"required"`
	Direction string           `json:"direction" binding:"required,oneof=RECEIPT PAYMENT"`
	MetalType string           `json:"metalType" binding:"required,oneof=GOLD SILVER"`
	Amount    *decimal.Decimal `json:"amount"`
	FineGiven *decimal.Decimal `json:"fineGiven" binding:"required"`
	Notes     string           `json:"notes"`
}

// MetalSettlementResponse is the API shape of a metal settlement.
type MetalSettlementResponse struct {
	MetalSettlementID string          `json:"metalSettlementID"`
	LedgerID          string          `json:"ledgerID"`
	Direction         string          `json:"direction"`
	MetalType         string          `json:"metalType"`
	Amount            decimal.Decimal `json:"amount"`
	FineGiven         decimal.Decimal `json:"fineGiven"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToMetalSettlementResponse converts a domain.MetalSettlement to its API shape.
func ToMetalSettlementResponse(m *domain.MetalSettlement) MetalSettlementResponse {
	return MetalSettlementResponse{
		MetalSettlementID: m.MetalSettlementID,
		LedgerID:          m.LedgerID,
		Direction:         string(m.Direction),
		MetalType:         string(m.MetalType),
		Amount:            m.Amount,
		FineGiven:         m.FineGiven,
		CreatedAt:         m.CreatedAt,
	}
}
