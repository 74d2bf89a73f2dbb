package repository

import (
	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(tx *gorm.DB, payment *model.Payment) error
	FindByReference(kind model.PaymentKind, referenceID uuid.UUID) ([]model.Payment, error)
	FindByParty(partyID uuid.UUID) ([]model.Payment, error)
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) Create(tx *gorm.DB, payment *model.Payment) error {
	return tx.Create(payment).Error
}

func (r *paymentRepo) FindByReference(kind model.PaymentKind, referenceID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("kind = ? AND reference_id = ?", kind, referenceID).
		Order("paid_at ASC").Find(&payments).Error
	return payments, err
}

func (r *paymentRepo) FindByParty(partyID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.Where("party_id = ?", partyID).Order("paid_at DESC").Find(&payments).Error
	return payments, err
}
