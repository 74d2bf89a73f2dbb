package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
	StatusPartial PaymentStatus = "partial"
)

// Sale is an immutable transaction document; only the payment rollup
// fields (amount_paid, pending_amount, payment_status) change after
// creation, via payment top-ups.
type Sale struct {
	BaseModel
	InvoiceNumber string     `gorm:"type:varchar(20);uniqueIndex;not null" json:"invoice_number"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index;not null" json:"customer_id"`
	Customer      *Customer  `json:"customer,omitempty"`
	Items         []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal      int64         `gorm:"not null" json:"subtotal"`
	Discount      int64         `gorm:"default:0" json:"discount"`
	Tax           int64         `gorm:"default:0" json:"tax"`
	Total         int64         `gorm:"not null" json:"total"`
	AmountPaid    int64         `gorm:"default:0" json:"amount_paid"`
	PendingAmount int64         `gorm:"default:0" json:"pending_amount"`
	PaymentMethod string        `gorm:"type:varchar(20);default:'cash'" json:"payment_method" validate:"omitempty,oneof=cash card upi bank_transfer partial"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(10);default:'paid'" json:"payment_status"`

	CashierID uuid.UUID `gorm:"type:uuid;index;not null" json:"cashier_id"`
	Cashier   *User     `json:"cashier,omitempty"`
	SaleDate  time.Time `gorm:"index;not null" json:"sale_date"`
	Notes     string    `json:"notes"`
}

type SaleItem struct {
	BaseModel
	SaleID      uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	ProductID   uuid.UUID `gorm:"type:uuid;index;not null" json:"product_id"`
	Product     *Product  `json:"product,omitempty"`
	ProductName string    `gorm:"type:varchar(255)" json:"product_name"` // snapshot at sale time

	Quantity      int   `gorm:"not null" json:"quantity"`
	PurchasePrice int64 `gorm:"not null" json:"purchase_price"` // cost basis snapshot
	SellingPrice  int64 `gorm:"not null" json:"selling_price"`
	Discount      int64 `gorm:"default:0" json:"discount"`
	Subtotal      int64 `gorm:"not null" json:"subtotal"`
}

// Profit sums the per-line margin of the sale.
func (s *Sale) Profit() int64 {
	var profit int64
	for _, item := range s.Items {
		profit += (item.SellingPrice - item.PurchasePrice) * int64(item.Quantity)
	}
	return profit
}
