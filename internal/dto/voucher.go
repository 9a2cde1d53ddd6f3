package dto

import (
	"time"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherItemRequest is a single billing line.
type VoucherItemRequest struct {
	Name        string           `json:"name" binding:"required"`
	MetalType   string           `json:"metalType" binding:"required,oneof=GOLD SILVER"`
	GrossWeight *decimal.Decimal `json:"grossWeight"`
	FineWeight  *decimal.Decimal `json:"fineWeight" binding:"required"`
	Rate        *decimal.Decimal `json:"rate"`
	Amount      *decimal.Decimal `json:"amount"`
}

// CreateVoucherRequest creates (or, on edit, replaces) a billing document.
type CreateVoucherRequest struct {
	LedgerID     string               `json:"ledgerID" binding:"required"`
	VoucherType  string               `json:"voucherType" binding:"required,oneof=SALE PURCHASE"`
	PaymentType  string               `json:"paymentType" binding:"required,oneof=CASH CREDIT"`
	GSTInvoice   bool                 `json:"gstInvoice"`
	InvoiceNo    string               `json:"invoiceNo"`
	Items        []VoucherItemRequest `json:"items" binding:"required,min=1,dive"`
	Total        *decimal.Decimal     `json:"total"`
	CashReceived *decimal.Decimal     `json:"cashReceived"`
	Adjustments  *decimal.Decimal     `json:"adjustments"`
	Notes        string               `json:"notes"`
}

// VoucherItemResponse is the API shape of a billing line.
type VoucherItemResponse struct {
	Name        string          `json:"name"`
	MetalType   string          `json:"metalType"`
	GrossWeight decimal.Decimal `json:"grossWeight"`
	FineWeight  decimal.Decimal `json:"fineWeight"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// VoucherResponse is the API shape of a voucher.
type VoucherResponse struct {
	VoucherID    string                `json:"voucherID"`
	LedgerID     string                `json:"ledgerID"`
	VoucherNo    int64                 `json:"voucherNo"`
	InvoiceNo    string                `json:"invoiceNo"`
	VoucherType  string                `json:"voucherType"`
	PaymentType  string                `json:"paymentType"`
	GSTInvoice   bool                  `json:"gstInvoice"`
	Items        []VoucherItemResponse `json:"items"`
	Total        decimal.Decimal       `json:"total"`
	CashReceived decimal.Decimal       `json:"cashReceived"`
	Adjustments  decimal.Decimal       `json:"adjustments"`
	Status       string                `json:"status"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ReversalResult reports the outcome of a cancel/delete request. Reversed is
// false when the reversal window had expired: the record went inactive but
// ledger and stock were intentionally left untouched.
type ReversalResult struct {
	RecordID string `json:"recordID"`
	Status   string `json:"status"`
	Reversed bool   `json:"reversed"`
	Message  string `json:"message,omitempty"`
}

// ToVoucherResponse converts a domain.Voucher to its API shape.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	items := make([]VoucherItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = VoucherItemResponse{
			Name:        item.Name,
			MetalType:   string(item.MetalType),
			GrossWeight: item.GrossWeight,
			FineWeight:  item.FineWeight,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}
	return VoucherResponse{
		VoucherID:    v.VoucherID,
		LedgerID:     v.LedgerID,
		VoucherNo:    v.VoucherNo,
		InvoiceNo:    v.InvoiceNo,
		VoucherType:  string(v.VoucherType),
		PaymentType:  string(v.PaymentType),
		GSTInvoice:   v.GSTInvoice,
		Items:        items,
		Total:        v.Total,
		CashReceived: v.CashReceived,
		Adjustments:  v.Adjustments,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
	}
}
