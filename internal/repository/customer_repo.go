package repository

import (
	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll(search string) ([]model.Customer, error)
	FindByID(id uuid.UUID) (*model.Customer, error)
	FindByPhone(phone string) (*model.Customer, error)
	Update(customer *model.Customer) error
	Delete(id uuid.UUID) error
	IncrementTotals(tx *gorm.DB, id uuid.UUID, purchases, payments, pending int64) error
}

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepo(db *gorm.DB) CustomerRepository {
	return &customerRepo{db}
}

func (r *customerRepo) Create(customer *model.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepo) FindAll(search string) ([]model.Customer, error) {
	q := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", like, like, like)
	}

	var customers []model.Customer
	err := q.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	return &customer, err
}

func (r *customerRepo) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.First(&customer, "phone = ?", phone).Error
	return &customer, err
}

func (r *customerRepo) Update(customer *model.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Customer{}, "id = ?", id).Error
}

// IncrementTotals mirrors a ledger delta into the running aggregates with
// atomic increments, inside the caller's transaction.
func (r *customerRepo) IncrementTotals(tx *gorm.DB, id uuid.UUID, purchases, payments, pending int64) error {
	return tx.Model(&model.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_purchases": gorm.Expr("total_purchases + ?", purchases),
		"total_payments":  gorm.Expr("total_payments + ?", payments),
		"pending_balance": gorm.Expr("pending_balance + ?", pending),
	}).Error
}
