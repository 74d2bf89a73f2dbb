// Package ledger holds the pure arithmetic behind sale and purchase
// documents: subtotals, totals, payment rollups, and status derivation.
// All amounts are integer minor units; nothing here touches storage.
package ledger

import (
	"fmt"

	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/model"
)

// Line is one priced line item of a document.
type Line struct {
	UnitPrice int64
	Quantity  int
	Discount  int64 // per-line discount, sales only
}

// Subtotal of a single line: unit price times quantity minus line discount.
func (l Line) Subtotal() int64 {
	return l.UnitPrice*int64(l.Quantity) - l.Discount
}

// Totals is the computed ledger of a document at creation time.
type Totals struct {
	Subtotal      int64
	Total         int64
	AmountPaid    int64
	PendingAmount int64
	Status        model.PaymentStatus
}

// Invariant: AmountPaid + PendingAmount == Total, at creation and after
// every payment application.

// ComputeSale derives the ledger for a sale. amountPaid == nil means the
// sale is settled in full at the counter.
func ComputeSale(lines []Line, orderDiscount, tax int64, amountPaid *int64) (Totals, error) {
	subtotal := sumLines(lines)
	total := subtotal - orderDiscount + tax
	return settle(subtotal, total, amountPaid)
}

// ComputePurchase derives the ledger for a purchase. Purchases carry no
// order-level discount; shipping is added instead.
func ComputePurchase(lines []Line, tax, shippingCost int64, amountPaid *int64) (Totals, error) {
	subtotal := sumLines(lines)
	total := subtotal + tax + shippingCost
	return settle(subtotal, total, amountPaid)
}

// ApplyPayment applies a top-up to an existing ledger and returns the new
// rollup. The amount must be positive and must not exceed the pending
// balance.
func (t Totals) ApplyPayment(amount int64) (Totals, error) {
	if amount <= 0 {
		return t, fmt.Errorf("%w: payment amount must be positive", apperr.ErrInvalidInput)
	}
	if amount > t.PendingAmount {
		return t, apperr.ErrOverpayment
	}

	t.AmountPaid += amount
	t.PendingAmount -= amount
	if t.PendingAmount == 0 {
		t.Status = model.StatusPaid
	} else {
		t.Status = model.StatusPartial
	}
	return t, nil
}

func sumLines(lines []Line) int64 {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	return subtotal
}

func settle(subtotal, total int64, amountPaid *int64) (Totals, error) {
	paid := total
	if amountPaid != nil {
		paid = *amountPaid
	}
	if paid < 0 {
		return Totals{}, fmt.Errorf("%w: amount paid cannot be negative", apperr.ErrInvalidInput)
	}
	if paid > total {
		return Totals{}, apperr.ErrOverpayment
	}

	return Totals{
		Subtotal:      subtotal,
		Total:         total,
		AmountPaid:    paid,
		PendingAmount: total - paid,
		Status:        deriveStatus(total-paid, paid),
	}, nil
}

func deriveStatus(pending, paid int64) model.PaymentStatus {
	switch {
	case pending <= 0:
		return model.StatusPaid
	case paid > 0:
		return model.StatusPartial
	default:
		return model.StatusPending
	}
}
