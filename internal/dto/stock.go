package dto

import (
	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockResponse is the API shape of the tenant's stock record.
type StockResponse struct {
	Gold       decimal.Decimal `json:"gold"`
	Silver     decimal.Decimal `json:"silver"`
	CashInHand decimal.Decimal `json:"cashInHand"`
	GoldRate   decimal.Decimal `json:"goldRate"`
	SilverRate decimal.Decimal `json:"silverRate"`
}

// ToStockResponse converts a domain.Stock to its API shape.
func ToStockResponse(s *domain.Stock) StockResponse {
	return StockResponse{
		Gold:       s.Gold,
		Silver:     s.Silver,
		CashInHand: s.CashInHand,
		GoldRate:   s.GoldRate,
		SilverRate: s.SilverRate,
	}
}

// UpdateRatesRequest sets the informational daily metal rates.
type UpdateRatesRequest struct {
	GoldRate   *decimal.Decimal `json:"goldRate" binding:"required"`
	SilverRate *decimal.Decimal `json:"silverRate" binding:"required"`
}

// AdjustCashRequest moves the free-running cash-in-hand accumulator by a
// signed delta.
type AdjustCashRequest struct {
	Delta *decimal.Decimal `json:"delta" binding:"required"`
}
