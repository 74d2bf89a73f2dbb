package repository

import (
	"time"

	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	SupplierID    *uuid.UUID
	PaymentStatus string
}

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindAll(filter PurchaseFilter) ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error)
	UpdateBalance(tx *gorm.DB, id uuid.UUID, amountPaid, pendingAmount int64, status model.PaymentStatus, method string) error
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *purchaseRepo) FindAll(filter PurchaseFilter) ([]model.Purchase, error) {
	q := r.db.Preload("Supplier").Preload("CreatedBy")

	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("purchase_date BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.SupplierID != nil {
		q = q.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}

	var purchases []model.Purchase
	err := q.Order("purchase_date DESC").Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := r.db.Preload("Supplier").Preload("Items.Product").Preload("CreatedBy").
		First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (r *purchaseRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&purchase, "id = ?", id).Error
	return &purchase, err
}

func (r *purchaseRepo) UpdateBalance(tx *gorm.DB, id uuid.UUID, amountPaid, pendingAmount int64, status model.PaymentStatus, method string) error {
	return tx.Model(&model.Purchase{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount_paid":    amountPaid,
		"pending_amount": pendingAmount,
		"payment_status": status,
		"payment_method": method,
	}).Error
}
