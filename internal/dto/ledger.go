package dto

import (
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerRequest creates a counterparty ledger.
type CreateLedgerRequest struct {
	Name          string           `json:"name" binding:"required"`
	Phone         string           `json:"phone"`
	LedgerType    string           `json:"ledgerType" binding:"omitempty,oneof=REGULAR GST"`
	OpeningAmount *decimal.Decimal `json:"openingAmount"`
	OpeningGold   *decimal.Decimal `json:"openingGold"`
	OpeningSilver *decimal.Decimal `json:"openingSilver"`
}

// BalancesResponse mirrors domain.Balances for API responses.
type BalancesResponse struct {
	CashBalance      decimal.Decimal `json:"cashBalance"`
	CreditBalance    decimal.Decimal `json:"creditBalance"`
	Amount           decimal.Decimal `json:"amount"`
	GoldFineWeight   decimal.Decimal `json:"goldFineWeight"`
	SilverFineWeight decimal.Decimal `json:"silverFineWeight"`
}

// LedgerResponse is the API shape of a ledger.
type LedgerResponse struct {
	LedgerID   string           `json:"ledgerID"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	LedgerType string           `json:"ledgerType"`
	Balances   BalancesResponse `json:"balances"`
}

// ToLedgerResponse converts a domain.Ledger to its API shape.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	return LedgerResponse{
		LedgerID:   l.LedgerID,
		Name:       l.Name,
		Phone:      l.Phone,
		LedgerType: string(l.LedgerType),
		Balances: BalancesResponse{
			CashBalance:      l.Balances.CashBalance,
			CreditBalance:    l.Balances.CreditBalance,
			Amount:           l.Balances.Amount,
			GoldFineWeight:   l.Balances.GoldFineWeight,
			SilverFineWeight: l.Balances.SilverFineWeight,
		},
	}
}

// ToLedgerResponses converts a slice of ledgers.
func ToLedgerResponses(ledgers []domain.Ledger) []LedgerResponse {
	responses := make([]LedgerResponse, len(ledgers))
	for i := range ledgers {
		responses[i] = ToLedgerResponse(&ledgers[i])
	}
	return responses
}
