package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentKind string

const (
	PaymentKindSale     PaymentKind = "sale"
	PaymentKindPurchase PaymentKind = "purchase"
)

// Payment is an append-only record of every amount received against a sale
// or paid against a purchase. The rollup fields on the order document are
// the read model; this table is the history.
type Payment struct {
	BaseModel
	Kind        PaymentKind `gorm:"type:varchar(10);index;not null" json:"kind"`
	ReferenceID uuid.UUID   `gorm:"type:uuid;index;not null" json:"reference_id"` // sale or purchase ID

	PartyType string     `gorm:"type:varchar(10)" json:"party_type"` // customer | supplier
	PartyID   *uuid.UUID `gorm:"type:uuid;index" json:"party_id,omitempty"`

	Amount        int64     `gorm:"not null" json:"amount"`
	PaymentMethod string    `gorm:"type:varchar(20)" json:"payment_method"`
	PaidAt        time.Time `gorm:"index;not null" json:"paid_at"`

	RecordedByID *uuid.UUID `gorm:"type:uuid" json:"recorded_by_id,omitempty"`
	Notes        string     `json:"notes"`
}
