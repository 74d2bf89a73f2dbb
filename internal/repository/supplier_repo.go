package repository

import (
	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(search string) ([]model.Supplier, error)
	FindByID(id uuid.UUID) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(id uuid.UUID) error
	IncrementTotals(tx *gorm.DB, id uuid.UUID, purchases, payments, pending int64) error
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(search string) ([]model.Supplier, error) {
	q := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR company ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var suppliers []model.Supplier
	err := q.Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.First(&supplier, "id = ?", id).Error
	return &supplier, err
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepo) IncrementTotals(tx *gorm.DB, id uuid.UUID, purchases, payments, pending int64) error {
	return tx.Model(&model.Supplier{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_purchases": gorm.Expr("total_purchases + ?", purchases),
		"total_payments":  gorm.Expr("total_payments + ?", payments),
		"pending_balance": gorm.Expr("pending_balance + ?", pending),
	}).Error
}
