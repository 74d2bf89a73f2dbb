package ledger

import (
	"testing"

	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paid(v int64) *int64 { return &v }

func TestLineSubtotal(t *testing.T) {
	line := Line{UnitPrice: 1000, Quantity: 3, Discount: 500}
	assert.Equal(t, int64(2500), line.Subtotal())
}

func TestComputeSaleFullPayment(t *testing.T) {
	lines := []Line{
		{UnitPrice: 1000, Quantity: 2},
		{UnitPrice: 3000, Quantity: 1, Discount: 500},
	}

	totals, err := ComputeSale(lines, 500, 1000, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(4500), totals.Subtotal)
	assert.Equal(t, int64(5000), totals.Total)
	assert.Equal(t, int64(5000), totals.AmountPaid)
	assert.Equal(t, int64(0), totals.PendingAmount)
	assert.Equal(t, model.StatusPaid, totals.Status)
}

func TestComputeSalePartialPayment(t *testing.T) {
	lines := []Line{{UnitPrice: 10000, Quantity: 1}}

	totals, err := ComputeSale(lines, 0, 0, paid(4000))
	require.NoError(t, err)

	assert.Equal(t, int64(10000), totals.Total)
	assert.Equal(t, int64(4000), totals.AmountPaid)
	assert.Equal(t, int64(6000), totals.PendingAmount)
	assert.Equal(t, model.StatusPartial, totals.Status)
	assert.Equal(t, totals.Total, totals.AmountPaid+totals.PendingAmount)
}

func TestComputeSaleZeroPaid(t *testing.T) {
	totals, err := ComputeSale([]Line{{UnitPrice: 2500, Quantity: 2}}, 0, 0, paid(0))
	require.NoError(t, err)

	assert.Equal(t, int64(0), totals.AmountPaid)
	assert.Equal(t, int64(5000), totals.PendingAmount)
	assert.Equal(t, model.StatusPending, totals.Status)
}

func TestComputeSaleOverpaymentRejected(t *testing.T) {
	_, err := ComputeSale([]Line{{UnitPrice: 1000, Quantity: 1}}, 0, 0, paid(1500))
	assert.ErrorIs(t, err, apperr.ErrOverpayment)
}

func TestComputeSaleNegativePaidRejected(t *testing.T) {
	_, err := ComputeSale([]Line{{UnitPrice: 1000, Quantity: 1}}, 0, 0, paid(-1))
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestComputeSaleFreeTotalIsPaid(t *testing.T) {
	// A fully discounted sale settles at zero and counts as paid.
	totals, err := ComputeSale([]Line{{UnitPrice: 1000, Quantity: 1}}, 1000, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), totals.Total)
	assert.Equal(t, model.StatusPaid, totals.Status)
}

func TestComputePurchase(t *testing.T) {
	lines := []Line{
		{UnitPrice: 2000, Quantity: 10},
		{UnitPrice: 500, Quantity: 4},
	}

	totals, err := ComputePurchase(lines, 1100, 900, paid(10000))
	require.NoError(t, err)

	assert.Equal(t, int64(22000), totals.Subtotal)
	assert.Equal(t, int64(24000), totals.Total)
	assert.Equal(t, int64(14000), totals.PendingAmount)
	assert.Equal(t, model.StatusPartial, totals.Status)
}

func TestApplyPayment(t *testing.T) {
	totals := Totals{Total: 10000, AmountPaid: 4000, PendingAmount: 6000, Status: model.StatusPartial}

	next, err := totals.ApplyPayment(2000)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), next.AmountPaid)
	assert.Equal(t, int64(4000), next.PendingAmount)
	assert.Equal(t, model.StatusPartial, next.Status)

	final, err := next.ApplyPayment(4000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), final.PendingAmount)
	assert.Equal(t, model.StatusPaid, final.Status)
	assert.Equal(t, final.Total, final.AmountPaid+final.PendingAmount)
}

func TestApplyPaymentExceedsPending(t *testing.T) {
	totals := Totals{Total: 10000, AmountPaid: 4000, PendingAmount: 6000, Status: model.StatusPartial}

	_, err := totals.ApplyPayment(7000)
	assert.ErrorIs(t, err, apperr.ErrOverpayment)
	// The receiver is unchanged on error.
	assert.Equal(t, int64(4000), totals.AmountPaid)
}

func TestApplyPaymentNonPositive(t *testing.T) {
	totals := Totals{Total: 10000, PendingAmount: 10000, Status: model.StatusPending}

	_, err := totals.ApplyPayment(0)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = totals.ApplyPayment(-500)
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
