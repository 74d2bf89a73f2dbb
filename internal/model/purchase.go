package model

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	BaseModel
	PurchaseNumber string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"purchase_number"`
	SupplierID     uuid.UUID      `gorm:"type:uuid;index;not null" json:"supplier_id"`
	Supplier       *Supplier      `json:"supplier,omitempty"`
	Items          []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal      int64         `gorm:"not null" json:"subtotal"`
	Tax           int64         `gorm:"default:0" json:"tax"`
	ShippingCost  int64         `gorm:"default:0" json:"shipping_cost"`
	Total         int64         `gorm:"not null" json:"total"`
	AmountPaid    int64         `gorm:"default:0" json:"amount_paid"`
	PendingAmount int64         `gorm:"default:0" json:"pending_amount"`
	PaymentMethod string        `gorm:"type:varchar(20);default:'cash'" json:"payment_method" validate:"omitempty,oneof=cash bank_transfer credit partial"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);default:'paid'" json:"payment_status"`

	PurchaseDate time.Time  `gorm:"index;not null" json:"purchase_date"`
	CreatedByID  *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedBy    *User      `json:"created_by,omitempty"`
	Notes        string     `json:"notes"`
}

type PurchaseItem struct {
	BaseModel
	PurchaseID  uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Product     *Product  `json:"product,omitempty"`
	ProductName string    `gorm:"type:varchar(255)" json:"product_name"`

	Quantity      int   `gorm:"not null" json:"quantity"`
	PurchasePrice int64 `gorm:"not null" json:"purchase_price"`
	Subtotal      int64 `gorm:"not null" json:"subtotal"`
}
