package model

import "gorm.io/datatypes"

// Customer carries running aggregates that mirror every sale and payment
// against it. All amounts are minor units.
type Customer struct {
	BaseModel
	Name    string         `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Phone   string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required"`
	Email   string         `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Address datatypes.JSON `gorm:"type:jsonb" json:"address,omitempty"`

	TotalPurchases int64 `gorm:"default:0" json:"total_purchases"`
	TotalPayments  int64 `gorm:"default:0" json:"total_payments"`
	PendingBalance int64 `gorm:"default:0" json:"pending_balance"`

	IsActive bool   `gorm:"default:true" json:"is_active"`
	Notes    string `json:"notes"`
}
