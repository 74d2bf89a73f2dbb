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

// Walk-In is the canonical billable party for anonymous counter sales.
// It is seeded at startup and only ever resolved here, never created.
const (
	WalkInName  = "Walk-In"
	WalkInPhone = "0000000000"
)

type SaleItemRequest struct {
	ProductID    uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
	SellingPrice *int64    `json:"selling_price" validate:"omitempty,gte=0"` // overrides the catalog price
	Discount     int64     `json:"discount" validate:"gte=0"`
}

type CreateSaleRequest struct {
	CustomerID    *uuid.UUID        `json:"customer_id"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Discount      int64             `json:"discount" validate:"gte=0"`
	Tax           int64             `json:"tax" validate:"gte=0"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=cash card upi bank_transfer partial"`
	AmountPaid    *int64            `json:"amount_paid" validate:"omitempty,gte=0"` // nil means paid in full
	Notes         string            `json:"notes"`
}

type AddPaymentRequest struct {
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card upi bank_transfer cheque"`
	Notes         string `json:"notes"`
}

type SaleService interface {
	CreateSale(req *CreateSaleRequest, cashierID uuid.UUID) (*model.Sale, error)
	AddPayment(saleID uuid.UUID, req *AddPaymentRequest, userID uuid.UUID) (*model.Sale, error)
	GetAllSales(filter repository.SaleFilter) ([]model.Sale, error)
	GetSaleByID(id uuid.UUID) (*model.Sale, error)
	GetSaleByInvoiceNumber(invoiceNumber string) (*model.Sale, error)
	GetPayments(saleID uuid.UUID) ([]model.Payment, error)
}

type saleService struct {
	db           *gorm.DB
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	paymentRepo  repository.PaymentRepository
	seqRepo      repository.SequenceRepository
	wsHub        *ws.Hub
}

func NewSaleService(
	db *gorm.DB,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	paymentRepo repository.PaymentRepository,
	seqRepo repository.SequenceRepository,
	hub *ws.Hub,
) SaleService {
	return &saleService{
		db:           db,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		paymentRepo:  paymentRepo,
		seqRepo:      seqRepo,
		wsHub:        hub,
	}
}

// stockPlan holds the post-sale quantity per product, computed up front so
// a failing line aborts the transaction before anything is written.
type stockPlan map[uuid.UUID]int

// planSale validates every line against the loaded products and builds the
// item snapshots. It never mutates anything: callers apply the returned
// plan only after all lines pass.
func planSale(products map[uuid.UUID]*model.Product, items []SaleItemRequest) ([]model.SaleItem, []ledger.Line, stockPlan, error) {
	saleItems := make([]model.SaleItem, 0, len(items))
	lines := make([]ledger.Line, 0, len(items))
	plan := make(stockPlan, len(items))

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, nil, nil, fmt.Errorf("%w: product %s", apperr.ErrNotFound, item.ProductID)
		}

		remaining, planned := plan[product.ID]
		if !planned {
			remaining = product.Quantity
		}
		if remaining < item.Quantity {
			return nil, nil, nil, fmt.Errorf("%w for %s", apperr.ErrInsufficientStock, product.Name)
		}
		plan[product.ID] = remaining - item.Quantity

		sellingPrice := product.SellingPrice
		if item.SellingPrice != nil {
			sellingPrice = *item.SellingPrice
		}

		line := ledger.Line{UnitPrice: sellingPrice, Quantity: item.Quantity, Discount: item.Discount}
		lines = append(lines, line)

		saleItems = append(saleItems, model.SaleItem{
			ProductID:     product.ID,
			ProductName:   product.Name,
			Quantity:      item.Quantity,
			PurchasePrice: product.PurchasePrice,
			SellingPrice:  sellingPrice,
			Discount:      item.Discount,
			Subtotal:      line.Subtotal(),
		})
	}

	return saleItems, lines, plan, nil
}

func (s *saleService) CreateSale(req *CreateSaleRequest, cashierID uuid.UUID) (*model.Sale, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	customer, err := s.resolveCustomer(req.CustomerID)
	if err != nil {
		return nil, err
	}

	var saleID uuid.UUID
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Lock every referenced product up front so concurrent sales on
		// the same stock serialize.
		products := make(map[uuid.UUID]*model.Product, len(req.Items))
		for _, item := range req.Items {
			if _, ok := products[item.ProductID]; ok {
				continue
			}
			product, err := s.productRepo.LockByID(tx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %s", apperr.ErrNotFound, item.ProductID)
				}
				return err
			}
			products[product.ID] = product
		}

		saleItems, lines, plan, err := planSale(products, req.Items)
		if err != nil {
			return err
		}

		totals, err := ledger.ComputeSale(lines, req.Discount, req.Tax, req.AmountPaid)
		if err != nil {
			return err
		}

		invoiceNumber, err := s.seqRepo.Next(tx, repository.PrefixInvoice)
		if err != nil {
			return err
		}

		sale := &model.Sale{
			InvoiceNumber: invoiceNumber,
			CustomerID:    customer.ID,
			Items:         saleItems,
			Subtotal:      totals.Subtotal,
			Discount:      req.Discount,
			Tax:           req.Tax,
			Total:         totals.Total,
			AmountPaid:    totals.AmountPaid,
			PendingAmount: totals.PendingAmount,
			PaymentMethod: defaultMethod(req.PaymentMethod),
			PaymentStatus: totals.Status,
			CashierID:     cashierID,
			SaleDate:      time.Now(),
			Notes:         req.Notes,
		}
		if err := s.saleRepo.Create(tx, sale); err != nil {
			return err
		}
		saleID = sale.ID

		// All lines validated; apply the whole plan.
		for productID, newQuantity := range plan {
			if err := s.productRepo.UpdateStock(tx, productID, newQuantity, false); err != nil {
				return err
			}
		}

		if totals.AmountPaid > 0 {
			payment := &model.Payment{
				Kind:          model.PaymentKindSale,
				ReferenceID:   sale.ID,
				PartyType:     "customer",
				PartyID:       &customer.ID,
				Amount:        totals.AmountPaid,
				PaymentMethod: sale.PaymentMethod,
				PaidAt:        sale.SaleDate,
				RecordedByID:  &cashierID,
			}
			if err := s.paymentRepo.Create(tx, payment); err != nil {
				return err
			}
		}

		return s.customerRepo.IncrementTotals(tx, customer.ID,
			totals.Total, totals.AmountPaid, totals.PendingAmount)
	})
	if err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.FindByID(saleID)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "sale_created",
		Payload: sale,
		Message: fmt.Sprintf("Sale %s posted", sale.InvoiceNumber),
	})

	return sale, nil
}

func (s *saleService) AddPayment(saleID uuid.UUID, req *AddPaymentRequest, userID uuid.UUID) (*model.Sale, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		sale, err := s.saleRepo.LockByID(tx, saleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: sale %s", apperr.ErrNotFound, saleID)
			}
			return err
		}

		totals := ledger.Totals{
			Total:         sale.Total,
			AmountPaid:    sale.AmountPaid,
			PendingAmount: sale.PendingAmount,
			Status:        sale.PaymentStatus,
		}
		totals, err = totals.ApplyPayment(req.Amount)
		if err != nil {
			return err
		}

		if err := s.saleRepo.UpdateBalance(tx, sale.ID,
			totals.AmountPaid, totals.PendingAmount, totals.Status, req.PaymentMethod); err != nil {
			return err
		}

		payment := &model.Payment{
			Kind:          model.PaymentKindSale,
			ReferenceID:   sale.ID,
			PartyType:     "customer",
			PartyID:       &sale.CustomerID,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			PaidAt:        time.Now(),
			RecordedByID:  &userID,
			Notes:         req.Notes,
		}
		if err := s.paymentRepo.Create(tx, payment); err != nil {
			return err
		}

		// Money received cuts the customer's outstanding balance.
		return s.customerRepo.IncrementTotals(tx, sale.CustomerID, 0, req.Amount, -req.Amount)
	})
	if err != nil {
		return nil, err
	}

	return s.saleRepo.FindByID(saleID)
}

func (s *saleService) GetAllSales(filter repository.SaleFilter) ([]model.Sale, error) {
	return s.saleRepo.FindAll(filter)
}

func (s *saleService) GetSaleByID(id uuid.UUID) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: sale %s", apperr.ErrNotFound, id)
	}
	return sale, err
}

func (s *saleService) GetSaleByInvoiceNumber(invoiceNumber string) (*model.Sale, error) {
	sale, err := s.saleRepo.FindByInvoiceNumber(invoiceNumber)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: invoice %s", apperr.ErrNotFound, invoiceNumber)
	}
	return sale, err
}

func (s *saleService) GetPayments(saleID uuid.UUID) ([]model.Payment, error) {
	if _, err := s.GetSaleByID(saleID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByReference(model.PaymentKindSale, saleID)
}

func (s *saleService) resolveCustomer(customerID *uuid.UUID) (*model.Customer, error) {
	if customerID == nil {
		customer, err := s.customerRepo.FindByPhone(WalkInPhone)
		if err != nil {
			return nil, fmt.Errorf("%w: walk-in customer not seeded", apperr.ErrNotFound)
		}
		return customer, nil
	}

	customer, err := s.customerRepo.FindByID(*customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperr.ErrNotFound, *customerID)
		}
		return nil, err
	}
	return customer, nil
}

func defaultMethod(method string) string {
	if method == "" {
		return "cash"
	}
	return method
}
