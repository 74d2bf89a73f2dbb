package repository

import (
	"time"

	"go-invoice-pos/internal/model"

	"gorm.io/gorm"
)

// SalesSummary aggregates a sale window. Profit is the per-line margin
// summed across every item sold in the window.
type SalesSummary struct {
	TotalSales    int64 `json:"total_sales"`
	TotalDiscount int64 `json:"total_discount"`
	TotalProfit   int64 `json:"total_profit"`
	Count         int64 `json:"count"`
}

// SalesBucket is one grouped row of the sales report.
type SalesBucket struct {
	Bucket      string `json:"bucket"`
	TotalSales  int64  `json:"total_sales"`
	TotalProfit int64  `json:"total_profit"`
	Count       int64  `json:"count"`
}

type ProductCounts struct {
	Total      int64 `json:"total"`
	InStock    int64 `json:"in_stock"`
	OutOfStock int64 `json:"out_of_stock"`
	LowStock   int64 `json:"low_stock"`
}

// StockValuation is quantity times price under three price bases.
type StockValuation struct {
	Cost      int64 `json:"cost"`      // purchase price
	Retail    int64 `json:"retail"`    // selling price
	Wholesale int64 `json:"wholesale"` // wholesale price, retail fallback
}

// SaleListRow is the flat row shape the sales report table renders.
type SaleListRow struct {
	Date          time.Time `json:"date"`
	InvoiceNumber string    `json:"invoice_number"`
	Customer      string    `json:"customer"`
	Items         int       `json:"items"`
	Total         int64     `json:"total"`
}

type ReportRepository interface {
	GetSalesSummary(start, end *time.Time) (*SalesSummary, error)
	GetSalesBuckets(granularity string, start, end *time.Time) ([]SalesBucket, error)
	GetProductCounts() (*ProductCounts, error)
	GetStockValuation() (*StockValuation, error)
	GetSalesList(start, end *time.Time) ([]SaleListRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

func (r *reportRepo) GetSalesSummary(start, end *time.Time) (*SalesSummary, error) {
	var summary SalesSummary

	q := r.db.Model(&model.Sale{}).
		Select("COALESCE(SUM(total), 0) as total_sales, COALESCE(SUM(discount), 0) as total_discount, COUNT(*) as count")
	q = saleWindow(q, "sale_date", start, end)
	if err := q.Scan(&summary).Error; err != nil {
		return nil, err
	}

	profit, err := r.profitBetween(start, end)
	if err != nil {
		return nil, err
	}
	summary.TotalProfit = profit

	return &summary, nil
}

// GetSalesBuckets groups sales by day or month. Totals and profit come
// from separate queries (the item join would multiply sale rows) and are
// merged on the bucket key.
func (r *reportRepo) GetSalesBuckets(granularity string, start, end *time.Time) ([]SalesBucket, error) {
	format := "YYYY-MM-DD"
	if granularity == "monthly" {
		format = "YYYY-MM"
	}

	var buckets []SalesBucket
	q := r.db.Model(&model.Sale{}).
		Select("to_char(sale_date, ?) as bucket, COALESCE(SUM(total), 0) as total_sales, COUNT(*) as count", format)
	q = saleWindow(q, "sale_date", start, end)
	if err := q.Group("bucket").Order("bucket DESC").Scan(&buckets).Error; err != nil {
		return nil, err
	}

	type profitRow struct {
		Bucket string
		Profit int64
	}
	var profits []profitRow
	pq := r.db.Model(&model.SaleItem{}).
		Select("to_char(sales.sale_date, ?) as bucket, COALESCE(SUM((sale_items.selling_price - sale_items.purchase_price) * sale_items.quantity), 0) as profit", format).
		Joins("JOIN sales ON sales.id = sale_items.sale_id AND sales.deleted_at IS NULL")
	pq = saleWindow(pq, "sales.sale_date", start, end)
	if err := pq.Group("bucket").Scan(&profits).Error; err != nil {
		return nil, err
	}

	byBucket := make(map[string]int64, len(profits))
	for _, p := range profits {
		byBucket[p.Bucket] = p.Profit
	}
	for i := range buckets {
		buckets[i].TotalProfit = byBucket[buckets[i].Bucket]
	}

	return buckets, nil
}

func (r *reportRepo) GetProductCounts() (*ProductCounts, error) {
	var counts ProductCounts

	if err := r.db.Model(&model.Product{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	r.db.Model(&model.Product{}).Where("quantity > 0").Count(&counts.InStock)
	r.db.Model(&model.Product{}).Where("quantity = 0").Count(&counts.OutOfStock)
	r.db.Model(&model.Product{}).Where("quantity > 0 AND quantity <= min_stock_level").Count(&counts.LowStock)

	return &counts, nil
}

func (r *reportRepo) GetStockValuation() (*StockValuation, error) {
	var valuation StockValuation
	err := r.db.Model(&model.Product{}).
		Select(`
			COALESCE(SUM(purchase_price * quantity), 0) as cost,
			COALESCE(SUM(selling_price * quantity), 0) as retail,
			COALESCE(SUM(COALESCE(wholesale_price, selling_price) * quantity), 0) as wholesale
		`).
		Scan(&valuation).Error
	return &valuation, err
}

func (r *reportRepo) GetSalesList(start, end *time.Time) ([]SaleListRow, error) {
	var rows []SaleListRow
	q := r.db.Model(&model.Sale{}).
		Select(`
			sales.sale_date as date,
			sales.invoice_number,
			COALESCE(customers.name, 'Walk-In') as customer,
			(SELECT COUNT(*) FROM sale_items WHERE sale_items.sale_id = sales.id AND sale_items.deleted_at IS NULL) as items,
			sales.total
		`).
		Joins("LEFT JOIN customers ON customers.id = sales.customer_id")
	q = saleWindow(q, "sales.sale_date", start, end)
	err := q.Order("sales.sale_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) profitBetween(start, end *time.Time) (int64, error) {
	var profit int64
	q := r.db.Model(&model.SaleItem{}).
		Select("COALESCE(SUM((sale_items.selling_price - sale_items.purchase_price) * sale_items.quantity), 0)").
		Joins("JOIN sales ON sales.id = sale_items.sale_id AND sales.deleted_at IS NULL")
	q = saleWindow(q, "sales.sale_date", start, end)
	err := q.Scan(&profit).Error
	return profit, err
}

func saleWindow(q *gorm.DB, column string, start, end *time.Time) *gorm.DB {
	if start != nil && end != nil {
		return q.Where(column+" BETWEEN ? AND ?", *start, *end)
	}
	if start != nil {
		return q.Where(column+" >= ?", *start)
	}
	return q
}
