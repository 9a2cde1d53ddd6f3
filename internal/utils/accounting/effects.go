// Package accounting holds the signed effect table shared by the
// transaction processor, the legacy arithmetic reversal path and the
// full-replay recompute. Keeping it in one place ensures apply, inverse and
// replay can never disagree.
package accounting

import (
	"fmt"

	"github.com/Nikhilrkatigar/gold-silver-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherBalanceDelta returns the signed effect of a voucher on the ledger's
// compound balance. GST vouchers are the caller's concern: they skip balance
// effects entirely and never reach this function.
//
// With total T and cash actually exchanged C:
//
//	sale/cash:       cash += (T - C)
//	sale/credit:     cash += T, fine += items' fine
//	purchase/cash:   cash -= (T - C)
//	purchase/credit: cash -= T, fine -= items' fine
func VoucherBalanceDelta(v *domain.Voucher) (domain.BalanceDelta, error) {
	goldFine, silverFine := v.FineWeightByMetal()

	switch v.VoucherType {
	case domain.Sale:
		switch v.PaymentType {
		case domain.PaymentCash:
			return domain.BalanceDelta{Cash: v.Total.Sub(v.CashReceived)}, nil
		case domain.PaymentCredit:
			return domain.BalanceDelta{Cash: v.Total, Gold: goldFine, Silver: silverFine}, nil
		}
	case domain.Purchase:
		switch v.PaymentType {
		case domain.PaymentCash:
			return domain.BalanceDelta{Cash: v.Total.Sub(v.CashReceived).Neg()}, nil
		case domain.PaymentCredit:
			return domain.BalanceDelta{Cash: v.Total.Neg(), Gold: goldFine.Neg(), Silver: silverFine.Neg()}, nil
		}
	}
	return domain.BalanceDelta{}, fmt.Errorf("unrecognized voucher kind %s/%s", v.VoucherType, v.PaymentType)
}

// VoucherStockAdjustment returns the signed stock movement of a voucher:
// sales deduct the items' fine weight, purchases restore it. Items on a GST
// invoice still move stock.
func VoucherStockAdjustment(v *domain.Voucher) domain.StockAdjustment {
	goldFine, silverFine := v.FineWeightByMetal()
	if v.VoucherType == domain.Sale {
		return domain.StockAdjustment{Gold: goldFine.Neg(), Silver: silverFine.Neg()}
	}
	return domain.StockAdjustment{Gold: goldFine, Silver: silverFine}
}

// ChooseSettlementTarget picks which monetary component an ADD_CASH
// settlement mutates: prefer cash unless cash is zero and credit is
// non-zero. The decision is recorded on the settlement and never re-derived.
func ChooseSettlementTarget(b domain.Balances) domain.SettlementTarget {
	if b.CashBalance.IsZero() && !b.CreditBalance.IsZero() {
		return domain.TargetCredit
	}
	return domain.TargetCash
}

// SettlementBalanceDelta returns the signed effect of a settlement. The
// ADD_CASH branch uses the recorded target, not the heuristic, so replaying
// an old settlement reproduces its original effect.
func SettlementBalanceDelta(s *domain.Settlement) (domain.BalanceDelta, error) {
	switch s.Kind {
	case domain.AddCash:
		if s.Target == domain.TargetCredit {
			return domain.BalanceDelta{Credit: s.Amount.Neg()}, nil
		}
		return domain.BalanceDelta{Cash: s.Amount.Neg()}, nil
	case domain.AddGold:
		return domain.BalanceDelta{Gold: s.FineGiven.Neg()}, nil
	case domain.AddSilver:
		return domain.BalanceDelta{Silver: s.FineGiven.Neg()}, nil
	case domain.MoneyToGold, domain.MoneyToSilver:
		if !s.MetalRate.IsPositive() {
			return domain.BalanceDelta{}, fmt.Errorf("metal rate must be positive for %s", s.Kind)
		}
		fine := s.Amount.Div(s.MetalRate)
		if s.Kind == domain.MoneyToGold {
			return domain.BalanceDelta{Cash: s.Amount.Neg(), Gold: fine.Neg()}, nil
		}
		return domain.BalanceDelta{Cash: s.Amount.Neg(), Silver: fine.Neg()}, nil
	}
	return domain.BalanceDelta{}, fmt.Errorf("unrecognized settlement kind %s", s.Kind)
}

// MetalSettlementBalanceDelta returns the signed effect of a metal
// settlement on the ledger: RECEIPT grows credit and fine weight, PAYMENT
// shrinks both.
func MetalSettlementBalanceDelta(m *domain.MetalSettlement) (domain.BalanceDelta, error) {
	var sign decimal.Decimal
	switch m.Direction {
	case domain.Receipt:
		sign = decimal.NewFromInt(1)
	case domain.Payment:
		sign = decimal.NewFromInt(-1)
	default:
		return domain.BalanceDelta{}, fmt.Errorf("unrecognized metal settlement direction %s", m.Direction)
	}

	d := domain.BalanceDelta{Credit: m.Amount.Mul(sign)}
	switch m.MetalType {
	case domain.Silver:
		d.Silver = m.FineGiven.Mul(sign)
	default:
		d.Gold = m.FineGiven.Mul(sign)
	}
	return d, nil
}

// MetalSettlementStockAdjustment returns the signed stock movement of a
// metal settlement: PAYMENT hands metal out (deduct), RECEIPT takes it in.
func MetalSettlementStockAdjustment(m *domain.MetalSettlement) domain.StockAdjustment {
	fine := m.FineGiven
	if m.Direction == domain.Payment {
		fine = fine.Neg()
	}
	if m.MetalType == domain.Silver {
		return domain.StockAdjustment{Silver: fine}
	}
	return domain.StockAdjustment{Gold: fine}
}

// KarigarStockAdjustment returns the signed stock movement of an artisan
// handoff: GIVEN deducts, RECEIVED restores.
func KarigarStockAdjustment(t *domain.KarigarTransaction) domain.StockAdjustment {
	fine := t.FineWeight
	if t.Direction == domain.Given {
		fine = fine.Neg()
	}
	if t.MetalType == domain.Silver {
		return domain.StockAdjustment{Silver: fine}
	}
	return domain.StockAdjustment{Gold: fine}
}
