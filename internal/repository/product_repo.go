package repository

import (
	"time"

	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows FindAll the way the list endpoint exposes it.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	IsActive   *bool
	LowStock   bool
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateStock(tx *gorm.DB, id uuid.UUID, newQuantity int, restocked bool) error
	UpdateCost(tx *gorm.DB, id uuid.UUID, newQuantity int, purchasePrice int64) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(filter ProductFilter) ([]model.Product, error) {
	q := r.db.Preload("Category").Preload("Supplier")

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ? OR barcode ILIKE ?", like, like, like)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	if filter.LowStock {
		q = q.Where("quantity <= min_stock_level")
	}

	var products []model.Product
	err := q.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "sku = ?", sku).Error
	return &product, err
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "barcode = ?", barcode).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}

// LockByID loads a product under FOR UPDATE so stock math inside the
// caller's transaction cannot race.
func (r *productRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error
	return &product, err
}

// UpdateStock runs within the caller's transaction.
func (r *productRepo) UpdateStock(tx *gorm.DB, id uuid.UUID, newQuantity int, restocked bool) error {
	updates := map[string]interface{}{"quantity": newQuantity}
	if restocked {
		updates["last_restocked"] = time.Now()
	}
	return tx.Model(&model.Product{}).Where("id = ?", id).Updates(updates).Error
}

// UpdateCost applies a purchase receipt: new quantity plus last-write-wins
// cost basis and the restock timestamp.
func (r *productRepo) UpdateCost(tx *gorm.DB, id uuid.UUID, newQuantity int, purchasePrice int64) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":       newQuantity,
		"purchase_price": purchasePrice,
		"last_restocked": time.Now(),
	}).Error
}
