package service

import (
	"testing"

	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubProduct(name string, quantity int, purchasePrice, sellingPrice int64) *model.Product {
	p := &model.Product{
		Name:          name,
		Quantity:      quantity,
		PurchasePrice: purchasePrice,
		SellingPrice:  sellingPrice,
	}
	p.ID = uuid.New()
	return p
}

func TestPlanSaleBuildsSnapshotsAndPlan(t *testing.T) {
	product := stubProduct("Notebook", 10, 800, 1200)
	products := map[uuid.UUID]*model.Product{product.ID: product}

	items, lines, plan, err := planSale(products, []SaleItemRequest{
		{ProductID: product.ID, Quantity: 3, Discount: 100},
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Notebook", items[0].ProductName)
	assert.Equal(t, int64(800), items[0].PurchasePrice)
	assert.Equal(t, int64(1200), items[0].SellingPrice)
	assert.Equal(t, int64(3500), items[0].Subtotal)

	require.Len(t, lines, 1)
	assert.Equal(t, int64(3500), lines[0].Subtotal())

	assert.Equal(t, 7, plan[product.ID])
	// Planning never mutates the loaded product.
	assert.Equal(t, 10, product.Quantity)
}

func TestPlanSalePriceOverride(t *testing.T) {
	product := stubProduct("Notebook", 5, 800, 1200)
	products := map[uuid.UUID]*model.Product{product.ID: product}
	override := int64(1000)

	items, _, _, err := planSale(products, []SaleItemRequest{
		{ProductID: product.ID, Quantity: 1, SellingPrice: &override},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), items[0].SellingPrice)
	assert.Equal(t, int64(1000), items[0].Subtotal)
}

func TestPlanSaleCumulativeLinesShareStock(t *testing.T) {
	product := stubProduct("Notebook", 5, 800, 1200)
	products := map[uuid.UUID]*model.Product{product.ID: product}

	// Two lines for the same product draw from one stock pool.
	_, _, plan, err := planSale(products, []SaleItemRequest{
		{ProductID: product.ID, Quantity: 3},
		{ProductID: product.ID, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, plan[product.ID])

	_, _, _, err = planSale(products, []SaleItemRequest{
		{ProductID: product.ID, Quantity: 3},
		{ProductID: product.ID, Quantity: 3},
	})
	assert.ErrorIs(t, err, apperr.ErrInsufficientStock)
}

func TestPlanSaleInsufficientStock(t *testing.T) {
	product := stubProduct("Notebook", 2, 800, 1200)
	products := map[uuid.UUID]*model.Product{product.ID: product}

	_, _, _, err := planSale(products, []SaleItemRequest{
		{ProductID: product.ID, Quantity: 3},
	})
	assert.ErrorIs(t, err, apperr.ErrInsufficientStock)
	assert.Equal(t, 2, product.Quantity)
}

func TestPlanSaleUnknownProduct(t *testing.T) {
	_, _, _, err := planSale(map[uuid.UUID]*model.Product{}, []SaleItemRequest{
		{ProductID: uuid.New(), Quantity: 1},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDefaultMethod(t *testing.T) {
	assert.Equal(t, "cash", defaultMethod(""))
	assert.Equal(t, "card", defaultMethod("card"))
}
