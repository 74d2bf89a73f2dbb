package model

import (
	"time"

	"github.com/google/uuid"
)

type Expense struct {
	BaseModel
	Category      string    `gorm:"type:varchar(30);index;not null" json:"category" validate:"required,oneof=rent utilities salaries supplies maintenance transportation marketing other"`
	Amount        int64     `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Description   string    `gorm:"not null" json:"description" validate:"required"`
	Date          time.Time `gorm:"index;not null" json:"date"`
	PaymentMethod string    `gorm:"type:varchar(20);default:'cash'" json:"payment_method" validate:"omitempty,oneof=cash bank_transfer card"`

	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedBy   *User      `json:"created_by,omitempty" validate:"-"`
	Notes       string     `json:"notes"`
}
