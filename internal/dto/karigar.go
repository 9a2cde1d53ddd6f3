package dto

import (
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateKarigarRequest registers an artisan.
type CreateKarigarRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// KarigarResponse is the API shape of a karigar.
type KarigarResponse struct {
	KarigarID string `json:"karigarID"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
}

// ToKarigarResponse converts a domain.Karigar to its API shape.
func ToKarigarResponse(k *domain.Karigar) KarigarResponse {
	return KarigarResponse{KarigarID: k.KarigarID, Name: k.Name, Phone: k.Phone}
}

// ToKarigarResponses converts a slice of karigars.
func ToKarigarResponses(karigars []domain.Karigar) []KarigarResponse {
	responses := make([]KarigarResponse, len(karigars))
	for i := range karigars {
		responses[i] = ToKarigarResponse(&karigars[i])
	}
	return responses
}

// CreateKarigarTransactionRequest records an artisan metal handoff.
type CreateKarigarTransactionRequest struct {
	KarigarID  string           `json:"karigarID" binding:"required"`
	Direction  string           `json:"direction" binding:"required,oneof=GIVEN RECEIVED"`
	MetalType  string           `json:"metalType" binding:"required,oneof=GOLD SILVER"`
	FineWeight *decimal.Decimal `json:"fineWeight" binding:"required"`
	Notes      string           `json:"notes"`
}

// KarigarTransactionResponse is the API shape of a karigar transaction.
type KarigarTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	KarigarID     string          `json:"karigarID"`
	Direction     string          `json:"direction"`
	MetalType     string          `json:"metalType"`
	FineWeight    decimal.Decimal `json:"fineWeight"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToKarigarTransactionResponse converts a domain.KarigarTransaction to its API shape.
func ToKarigarTransactionResponse(t *domain.KarigarTransaction) KarigarTransactionResponse {
	return KarigarTransactionResponse{
		TransactionID: t.TransactionID,
		KarigarID:     t.KarigarID,
		Direction:     string(t.Direction),
		MetalType:     string(t.MetalType),
		FineWeight:    t.FineWeight,
		CreatedAt:     t.CreatedAt,
	}
}
