package model

import (
	"time"

	"github.com/google/uuid"
)

// Product prices are stored in minor units (cents) to keep the ledger exact.
type Product struct {
	BaseModel
	Name           string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU            *string    `gorm:"type:varchar(50);uniqueIndex" json:"sku,omitempty"`
	Barcode        *string    `gorm:"type:varchar(64);uniqueIndex" json:"barcode,omitempty"`
	Description    string     `json:"description"`
	PurchasePrice  int64      `gorm:"not null" json:"purchase_price" validate:"gte=0"`
	SellingPrice   int64      `gorm:"not null" json:"selling_price" validate:"gte=0"`
	WholesalePrice *int64     `json:"wholesale_price,omitempty"`
	Quantity       int        `gorm:"default:0" json:"quantity"`
	MinStockLevel  int        `gorm:"default:10" json:"min_stock_level" validate:"gte=0"`
	Unit           string     `gorm:"type:varchar(20);default:'pcs'" json:"unit" validate:"omitempty,oneof=pcs kg liter box set"`
	IsActive       bool       `gorm:"default:true" json:"is_active"`
	LastRestocked  *time.Time `json:"last_restocked,omitempty"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `json:"category,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`
}

// IsLowStock reports whether the product sits at or below its reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStockLevel
}

// ProfitMargin is the per-unit margin in minor units.
func (p *Product) ProfitMargin() int64 {
	return p.SellingPrice - p.PurchasePrice
}
