package domain

import "github.com/shopspring/decimal"

// VoucherType indicates the commercial direction of a billing document.
type VoucherType string

const (
	Sale     VoucherType = "SALE"
	Purchase VoucherType = "PURCHASE"
)

// PaymentType indicates how the voucher is settled against the ledger.
type PaymentType string

const (
	PaymentCash   PaymentType = "CASH"
	PaymentCredit PaymentType = "CREDIT"
)

// VoucherStatus is the record's lifecycle state. CANCELLED is terminal.
type VoucherStatus string

const (
	VoucherActive    VoucherStatus = "ACTIVE"
	VoucherCancelled VoucherStatus = "CANCELLED"
)

// VoucherItem is a single line of a billing document.
type VoucherItem struct {
	Name        string          `json:"name"`
	MetalType   MetalType       `json:"metalType"`
	GrossWeight decimal.Decimal `json:"grossWeight"`
	FineWeight  decimal.Decimal `json:"fineWeight"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Voucher is an immutable-once-committed billing document (sale or
// purchase). It carries the inputs that produced its effect plus the
// reversal snapshot needed to undo that effect exactly later.
type Voucher struct {
	VoucherID    string          `json:"voucherID"`
	TenantID     string          `json:"tenantID"`
	LedgerID     string          `json:"ledgerID"`
	VoucherNo    int64           `json:"voucherNo"`
	InvoiceNo    string          `json:"invoiceNo"`
	VoucherType  VoucherType     `json:"voucherType"`
	PaymentType  PaymentType     `json:"paymentType"`
	GSTInvoice   bool            `json:"gstInvoice"`
	Items        []VoucherItem   `json:"items"`
	Total        decimal.Decimal `json:"total"`
	CashReceived decimal.Decimal `json:"cashReceived"`
	Adjustments  decimal.Decimal `json:"adjustments"`
	Notes        string          `json:"notes"`
	Status       VoucherStatus   `json:"status"`

	// Reversal snapshot. PreviousLedgerState is the ledger's balances as
	// they were immediately before this voucher's mutation; nil for GST
	// vouchers (no balance effect) and for legacy records.
	PreviousLedgerState *Balances       `json:"previousLedgerState,omitempty"`
	StockAdjustment     StockAdjustment `json:"stockAdjustment"`
	StockRestored       bool            `json:"stockRestored"`

	AuditFields
}

// FineWeightByMetal sums the items' fine weights per metal.
func (v *Voucher) FineWeightByMetal() (gold, silver decimal.Decimal) {
	gold, silver = decimal.Zero, decimal.Zero
	for _, item := range v.Items {
		switch item.MetalType {
		case Silver:
			silver = silver.Add(item.FineWeight)
		default:
			gold = gold.Add(item.FineWeight)
		}
	}
	return gold, silver
}

// ItemsTotal recomputes the monetary total from the item lines plus the
// voucher-level adjustments. Used to self-heal a zero or missing stored
// total on billing records.
func (v *Voucher) ItemsTotal() decimal.Decimal {
	total := v.Adjustments
	for _, item := range v.Items {
		total = total.Add(item.Amount)
	}
	return total
}
