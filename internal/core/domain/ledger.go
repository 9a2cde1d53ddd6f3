package domain

import "github.com/shopspring/decimal"

// LedgerType distinguishes regular counterparty ledgers from GST-invoiced
// ones. GST ledgers are billed but never carry running balances.
type LedgerType string

const (
	Regular LedgerType = "REGULAR"
	GST     LedgerType = "GST"
)

// Balances is the compound running balance of a ledger: a monetary amount
// split into cash and credit components plus separate fine-weight balances
// for each metal. Amount is derived: it always equals CashBalance +
// CreditBalance and is recomputed after every mutation, never written
// independently.
type Balances struct {
	CashBalance      decimal.Decimal `json:"cashBalance"`
	CreditBalance    decimal.Decimal `json:"creditBalance"`
	Amount           decimal.Decimal `json:"amount"`
	GoldFineWeight   decimal.Decimal `json:"goldFineWeight"`
	SilverFineWeight decimal.Decimal `json:"silverFineWeight"`
}

// OpeningBalance is the fixed reference the ledger falls back to when all of
// its transactions are purged or balances are recomputed from scratch.
type OpeningBalance struct {
	Amount           decimal.Decimal `json:"amount"`
	GoldFineWeight   decimal.Decimal `json:"goldFineWeight"`
	SilverFineWeight decimal.Decimal `json:"silverFineWeight"`
}

// Ledger is a counterparty's running account within a tenant.
type Ledger struct {
	LedgerID       string         `json:"ledgerID"`
	TenantID       string         `json:"tenantID"`
	Name           string         `json:"name"`
	Phone          string         `json:"phone"`
	LedgerType     LedgerType     `json:"ledgerType"`
	Balances       Balances       `json:"balances"`
	OpeningBalance OpeningBalance `json:"openingBalance"`
	AuditFields
}

// BalanceDelta is the signed effect a single commercial event has on the
// four independent balance fields. Amount is never part of a delta; it is
// always rederived.
type BalanceDelta struct {
	Cash   decimal.Decimal
	Credit decimal.Decimal
	Gold   decimal.Decimal
	Silver decimal.Decimal
}

// IsZero reports whether the delta leaves every field untouched.
func (d BalanceDelta) IsZero() bool {
	return d.Cash.IsZero() && d.Credit.IsZero() && d.Gold.IsZero() && d.Silver.IsZero()
}

// Inverse returns the delta that exactly undoes d.
func (d BalanceDelta) Inverse() BalanceDelta {
	return BalanceDelta{
		Cash:   d.Cash.Neg(),
		Credit: d.Credit.Neg(),
		Gold:   d.Gold.Neg(),
		Silver: d.Silver.Neg(),
	}
}

// ApplyDelta adds the delta to the four independent fields and rederives
// Amount. This is the only sanctioned way to move a ledger's balances.
func (l *Ledger) ApplyDelta(d BalanceDelta) {
	l.Balances.CashBalance = l.Balances.CashBalance.Add(d.Cash)
	l.Balances.CreditBalance = l.Balances.CreditBalance.Add(d.Credit)
	l.Balances.GoldFineWeight = l.Balances.GoldFineWeight.Add(d.Gold)
	l.Balances.SilverFineWeight = l.Balances.SilverFineWeight.Add(d.Silver)
	l.Balances.Amount = l.Balances.CashBalance.Add(l.Balances.CreditBalance)
}

// RestoreBalances overwrites the running balances with a previously captured
// snapshot verbatim and rederives Amount. Snapshot restore is exact and
// idempotent, unlike an arithmetic inverse which would compound decimal
// drift across repeated edits.
func (l *Ledger) RestoreBalances(snapshot Balances) {
	l.Balances = snapshot
	l.Balances.Amount = l.Balances.CashBalance.Add(l.Balances.CreditBalance)
}

// ResetToOpening reinstates the opening reference: fine weights and cash are
// taken verbatim from the opening balance, credit is forced to zero.
func (l *Ledger) ResetToOpening() {
	l.Balances.CashBalance = l.OpeningBalance.Amount
	l.Balances.CreditBalance = decimal.Zero
	l.Balances.GoldFineWeight = l.OpeningBalance.GoldFineWeight
	l.Balances.SilverFineWeight = l.OpeningBalance.SilverFineWeight
	l.Balances.Amount = l.Balances.CashBalance.Add(l.Balances.CreditBalance)
}

// ResetToZero zeroes every balance field. Used for GST-type ledgers and for
// purge operations.
func (l *Ledger) ResetToZero() {
	l.Balances = Balances{
		CashBalance:      decimal.Zero,
		CreditBalance:    decimal.Zero,
		Amount:           decimal.Zero,
		GoldFineWeight:   decimal.Zero,
		SilverFineWeight: decimal.Zero,
	}
}

// CarriesBalances reports whether this ledger accumulates running balances.
// GST-type ledgers are invoiced but stay pinned at zero.
func (l *Ledger) CarriesBalances() bool {
	return l.LedgerType != GST
}
