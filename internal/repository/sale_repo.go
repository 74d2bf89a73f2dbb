package repository

import (
	"time"

	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	CustomerID    *uuid.UUID
	PaymentStatus string
}

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll(filter SaleFilter) ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
	FindByInvoiceNumber(invoiceNumber string) (*model.Sale, error)
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Sale, error)
	UpdateBalance(tx *gorm.DB, id uuid.UUID, amountPaid, pendingAmount int64, status model.PaymentStatus, method string) error
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	return tx.Create(sale).Error
}

func (r *saleRepo) FindAll(filter SaleFilter) ([]model.Sale, error) {
	q := r.db.Preload("Customer").Preload("Cashier")

	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("sale_date BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.PaymentStatus != "" {
		q = q.Where("payment_status = ?", filter.PaymentStatus)
	}

	var sales []model.Sale
	err := q.Order("sale_date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Customer").Preload("Items.Product").Preload("Cashier").
		First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) FindByInvoiceNumber(invoiceNumber string) (*model.Sale, error) {
	var sale model.Sale
	err := r.db.Preload("Customer").Preload("Items.Product").Preload("Cashier").
		First(&sale, "invoice_number = ?", invoiceNumber).Error
	return &sale, err
}

func (r *saleRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&sale, "id = ?", id).Error
	return &sale, err
}

func (r *saleRepo) UpdateBalance(tx *gorm.DB, id uuid.UUID, amountPaid, pendingAmount int64, status model.PaymentStatus, method string) error {
	return tx.Model(&model.Sale{}).Where("id = ?", id).Updates(map[string]interface{}{
		"amount_paid":    amountPaid,
		"pending_amount": pendingAmount,
		"payment_status": status,
		"payment_method": method,
	}).Error
}
