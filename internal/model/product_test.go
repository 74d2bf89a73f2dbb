package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	p := Product{Quantity: 11, MinStockLevel: 10}
	assert.False(t, p.IsLowStock())

	p.Quantity = 10
	assert.True(t, p.IsLowStock(), "threshold itself counts as low")

	p.Quantity = 0
	assert.True(t, p.IsLowStock())
}

func TestProfitMargin(t *testing.T) {
	p := Product{PurchasePrice: 800, SellingPrice: 1200}
	assert.Equal(t, int64(400), p.ProfitMargin())

	// Selling below cost is allowed; the margin just goes negative.
	p.SellingPrice = 700
	assert.Equal(t, int64(-100), p.ProfitMargin())
}
