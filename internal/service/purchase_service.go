package service

import (
	"errors"
	"fmt"
	"time"

	"go-invoice-pos/internal/apperr"
	"go-invoice-pos/internal/ledger"
	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
	"go-invoice-pos/internal/ws"
	"go-invoice-pos/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseItemRequest struct {
	ProductID     uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity      int       `json:"quantity" validate:"required,gt=0"`
	PurchasePrice int64     `json:"purchase_price" validate:"gte=0"`
}

type CreatePurchaseRequest struct {
	SupplierID    uuid.UUID             `json:"supplier_id" validate:"uuid_required"`
	Items         []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Tax           int64                 `json:"tax" validate:"gte=0"`
	ShippingCost  int64                 `json:"shipping_cost" validate:"gte=0"`
	PaymentMethod string                `json:"payment_method" validate:"omitempty,oneof=cash bank_transfer credit partial"`
	AmountPaid    *int64                `json:"amount_paid" validate:"omitempty,gte=0"`
	Notes         string                `json:"notes"`
}

type PurchaseService interface {
	CreatePurchase(req *CreatePurchaseRequest, userID uuid.UUID) (*model.Purchase, error)
	AddPayment(purchaseID uuid.UUID, req *AddPaymentRequest, userID uuid.UUID) (*model.Purchase, error)
	GetAllPurchases(filter repository.PurchaseFilter) ([]model.Purchase, error)
	GetPurchaseByID(id uuid.UUID) (*model.Purchase, error)
	GetPayments(purchaseID uuid.UUID) ([]model.Payment, error)
}

type purchaseService struct {
	db           *gorm.DB
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	paymentRepo  repository.PaymentRepository
	seqRepo      repository.SequenceRepository
	wsHub        *ws.Hub
}

func NewPurchaseService(
	db *gorm.DB,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	paymentRepo repository.PaymentRepository,
	seqRepo repository.SequenceRepository,
	hub *ws.Hub,
) PurchaseService {
	return &purchaseService{
		db:           db,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		paymentRepo:  paymentRepo,
		seqRepo:      seqRepo,
		wsHub:        hub,
	}
}

func (s *purchaseService) CreatePurchase(req *CreatePurchaseRequest, userID uuid.UUID) (*model.Purchase, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindByID(req.SupplierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: supplier %s", apperr.ErrNotFound, req.SupplierID)
		}
		return nil, err
	}

	var purchaseID uuid.UUID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		purchaseItems := make([]model.PurchaseItem, 0, len(req.Items))
		lines := make([]ledger.Line, 0, len(req.Items))

		// Receipt per line: quantity up, cost basis overwritten with the
		// incoming price (last-write-wins, no weighted averaging).
		received := make(map[uuid.UUID]struct {
			quantity int
			price    int64
		}, len(req.Items))

		for _, item := range req.Items {
			product, err := s.productRepo.LockByID(tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %s", apperr.ErrNotFound, item.ProductID)
				}
				return err
			}

			current, ok := received[product.ID]
			if !ok {
				current.quantity = product.Quantity
			}
			current.quantity += item.Quantity
			current.price = item.PurchasePrice
			received[product.ID] = current

			line := ledger.Line{UnitPrice: item.PurchasePrice, Quantity: item.Quantity}
			lines = append(lines, line)

			purchaseItems = append(purchaseItems, model.PurchaseItem{
				ProductID:     product.ID,
				ProductName:   product.Name,
				Quantity:      item.Quantity,
				PurchasePrice: item.PurchasePrice,
				Subtotal:      line.Subtotal(),
			})
		}

		totals, err := ledger.ComputePurchase(lines, req.Tax, req.ShippingCost, req.AmountPaid)
		if err != nil {
			return err
		}

		purchaseNumber, err := s.seqRepo.Next(tx, repository.PrefixPurchase)
		if err != nil {
			return err
		}

		purchase := &model.Purchase{
			PurchaseNumber: purchaseNumber,
			SupplierID:     supplier.ID,
			Items:          purchaseItems,
			Subtotal:       totals.Subtotal,
			Tax:            req.Tax,
			ShippingCost:   req.ShippingCost,
			Total:          totals.Total,
			AmountPaid:     totals.AmountPaid,
			PendingAmount:  totals.PendingAmount,
			PaymentMethod:  defaultMethod(req.PaymentMethod),
			PaymentStatus:  totals.Status,
			PurchaseDate:   time.Now(),
			CreatedByID:    &userID,
			Notes:          req.Notes,
		}
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}
		purchaseID = purchase.ID

		for productID, r := range received {
			if err := s.productRepo.UpdateCost(tx, productID, r.quantity, r.price); err != nil {
				return err
			}
		}

		if totals.AmountPaid > 0 {
			payment := &model.Payment{
				Kind:          model.PaymentKindPurchase,
				ReferenceID:   purchase.ID,
				PartyType:     "supplier",
				PartyID:       &supplier.ID,
				Amount:        totals.AmountPaid,
				PaymentMethod: purchase.PaymentMethod,
				PaidAt:        purchase.PurchaseDate,
				RecordedByID:  &userID,
			}
			if err := s.paymentRepo.Create(tx, payment); err != nil {
				return err
			}
		}

		return s.supplierRepo.IncrementTotals(tx, supplier.ID,
			totals.Total, totals.AmountPaid, totals.PendingAmount)
	})
	if err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.FindByID(purchaseID)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "purchase_created",
		Payload: purchase,
		Message: fmt.Sprintf("Purchase %s received", purchase.PurchaseNumber),
	})

	return purchase, nil
}

func (s *purchaseService) AddPayment(purchaseID uuid.UUID, req *AddPaymentRequest, userID uuid.UUID) (*model.Purchase, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		purchase, err := s.purchaseRepo.LockByID(tx, purchaseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: purchase %s", apperr.ErrNotFound, purchaseID)
			}
			return err
		}

		totals := ledger.Totals{
			Total:         purchase.Total,
			AmountPaid:    purchase.AmountPaid,
			PendingAmount: purchase.PendingAmount,
			Status:        purchase.PaymentStatus,
		}
		totals, err = totals.ApplyPayment(req.Amount)
		if err != nil {
			return err
		}

		if err := s.purchaseRepo.UpdateBalance(tx, purchase.ID,
			totals.AmountPaid, totals.PendingAmount, totals.Status, req.PaymentMethod); err != nil {
			return err
		}

		payment := &model.Payment{
			Kind:          model.PaymentKindPurchase,
			ReferenceID:   purchase.ID,
			PartyType:     "supplier",
			PartyID:       &purchase.SupplierID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			PaidAt:        time.Now(),
			RecordedByID:  &userID,
			Notes:         req.Notes,
		}
		if err := s.paymentRepo.Create(tx, payment); err != nil {
			return err
		}

		return s.supplierRepo.IncrementTotals(tx, purchase.SupplierID, 0, req.Amount, -req.Amount)
	})
	if err != nil {
		return nil, err
	}

	return s.purchaseRepo.FindByID(purchaseID)
}

func (s *purchaseService) GetAllPurchases(filter repository.PurchaseFilter) ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll(filter)
}

func (s *purchaseService) GetPurchaseByID(id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: purchase %s", apperr.ErrNotFound, id)
	}
	return purchase, err
}

func (s *purchaseService) GetPayments(purchaseID uuid.UUID) ([]model.Payment, error) {
	if _, err := s.GetPurchaseByID(purchaseID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByReference(model.PaymentKindPurchase, purchaseID)
}
