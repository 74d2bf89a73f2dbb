package service

import (
	"errors"
	"fmt"

	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/ws"
	"go-invoice-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StockOperation string

const (
	StockAdd      StockOperation = "add"
	StockSubtract StockOperation = "subtract"
)

type AdjustStockRequest struct {
	Quantity  int            `json:"quantity" validate:"required,gt=0"`
	Operation StockOperation `json:"operation" validate:"required,oneof=add subtract"`
}

type ProductService interface {
	CreateProduct(product *model.Product) error
	UpdateProduct(id uuid.UUID, product *model.Product) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	AdjustStock(id uuid.UUID, req *AdjustStockRequest) (*model.Product, error)
	GetAllProducts(filter repository.ProductFilter) ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	GetProductByBarcode(barcode string) (*model.Product, error)
}

type productService struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewProductService(db *gorm.DB, productRepo repository.ProductRepository, hub *ws.Hub) ProductService {
	return &productService{db: db, productRepo: productRepo, wsHub: hub}
}

func (s *productService) CreateProduct(product *model.Product) error {
	if err := validator.Validate(product); err != nil {
		return err
	}

	if product.SKU != nil && *product.SKU != "" {
		existing, _ := s.productRepo.FindBySKU(*product.SKU)
		if existing != nil && existing.ID != uuid.Nil {
			return fmt.Errorf("%w: sku %s", apperr.ErrDuplicate, *product.SKU)
		}
	}
	if product.Unit == "" {
		product.Unit = "pcs"
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_created",
		Payload: product,
		Message: fmt.Sprintf("Product '%s' created", product.Name),
	})

	return nil
}

func (s *productService) UpdateProduct(id uuid.UUID, req *model.Product) (*model.Product, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.productRepo.LockByID(tx, id)
		if err != nil {
			return fmt.Errorf("%w: product %s", apperr.ErrNotFound, id)
		}

		existing.Name = req.Name
		existing.SKU = req.SKU
		existing.Barcode = req.Barcode
		existing.Description = req.Description
		existing.PurchasePrice = req.PurchasePrice
		existing.SellingPrice = req.SellingPrice
		existing.WholesalePrice = req.WholesalePrice
		existing.Quantity = req.Quantity
		existing.MinStockLevel = req.MinStockLevel
		existing.Unit = req.Unit
		existing.IsActive = req.IsActive
		existing.CategoryID = req.CategoryID
		existing.SupplierID = req.SupplierID

		if err := tx.Save(existing).Error; err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_updated",
		Payload: updated,
		Message: fmt.Sprintf("Product '%s' updated", updated.Name),
	})

	return updated, nil
}

func (s *productService) DeleteProduct(id uuid.UUID) error {
	if _, err := s.GetProductByID(id); err != nil {
		return err
	}
	return s.productRepo.Delete(id)
}

// AdjustStock handles the manual stock endpoint. Subtractions get the same
// floor check as sales; additions bump the restock timestamp.
func (s *productService) AdjustStock(id uuid.UUID, req *AdjustStockRequest) (*model.Product, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	var adjusted *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.LockByID(tx, id)
		if err != nil {
			return fmt.Errorf("%w: product %s", apperr.ErrNotFound, id)
		}

		newQuantity := product.Quantity
		restocked := false
		switch req.Operation {
		case StockAdd:
			newQuantity += req.Quantity
			restocked = true
		case StockSubtract:
			if product.Quantity < req.Quantity {
				return fmt.Errorf("%w for %s", apperr.ErrInsufficientStock, product.Name)
			}
			newQuantity -= req.Quantity
		}

		if err := s.productRepo.UpdateStock(tx, product.ID, newQuantity, restocked); err != nil {
			return err
		}

		product.Quantity = newQuantity
		adjusted = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "stock_adjusted",
		Payload: adjusted,
		Message: fmt.Sprintf("Stock of '%s' set to %d", adjusted.Name, adjusted.Quantity),
	})

	return adjusted, nil
}

func (s *productService) GetAllProducts(filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(filter)
}

func (s *productService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", apperr.ErrNotFound, id)
	}
	return product, err
}

func (s *productService) GetProductByBarcode(barcode string) (*model.Product, error) {
	product, err := s.productRepo.FindByBarcode(barcode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: barcode %s", apperr.ErrNotFound, barcode)
	}
	return product, err
}
