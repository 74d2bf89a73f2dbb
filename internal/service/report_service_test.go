package service

import (
	"testing"
	"time"

	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	summary   repository.SalesSummary
	buckets   []repository.SalesBucket
	counts    repository.ProductCounts
	valuation repository.StockValuation
	list      []repository.SaleListRow

	summaryWindows [][2]*time.Time
	bucketGroupBy  string
}

func (s *stubReportRepo) GetSalesSummary(start, end *time.Time) (*repository.SalesSummary, error) {
	s.summaryWindows = append(s.summaryWindows, [2]*time.Time{start, end})
	summary := s.summary
	return &summary, nil
}

func (s *stubReportRepo) GetSalesBuckets(granularity string, start, end *time.Time) ([]repository.SalesBucket, error) {
	s.bucketGroupBy = granularity
	return s.buckets, nil
}

func (s *stubReportRepo) GetProductCounts() (*repository.ProductCounts, error) {
	counts := s.counts
	return &counts, nil
}

func (s *stubReportRepo) GetStockValuation() (*repository.StockValuation, error) {
	valuation := s.valuation
	return &valuation, nil
}

func (s *stubReportRepo) GetSalesList(start, end *time.Time) ([]repository.SaleListRow, error) {
	return s.list, nil
}

type stubExpenseRepo struct {
	expenses []model.Expense
	total    int64
}

func (s *stubExpenseRepo) Create(*model.Expense) error { return nil }
func (s *stubExpenseRepo) FindAll(repository.ExpenseFilter) ([]model.Expense, error) {
	return s.expenses, nil
}
func (s *stubExpenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) { return nil, nil }
func (s *stubExpenseRepo) Update(*model.Expense) error                   { return nil }
func (s *stubExpenseRepo) Delete(id uuid.UUID) error                     { return nil }
func (s *stubExpenseRepo) TotalBetween(start, end *time.Time) (int64, error) {
	return s.total, nil
}

func newTestReportService(reportRepo *stubReportRepo, expenseRepo *stubExpenseRepo, now time.Time) *reportService {
	return &reportService{
		reportRepo:  reportRepo,
		expenseRepo: expenseRepo,
		now:         func() time.Time { return now },
	}
}

func TestGetDashboardStats(t *testing.T) {
	reportRepo := &stubReportRepo{
		summary:   repository.SalesSummary{TotalSales: 50000, TotalProfit: 12000, Count: 4},
		counts:    repository.ProductCounts{Total: 20, InStock: 15, OutOfStock: 5, LowStock: 3},
		valuation: repository.StockValuation{Cost: 100000, Retail: 150000, Wholesale: 130000},
	}
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.UTC)
	svc := newTestReportService(reportRepo, &stubExpenseRepo{}, now)

	stats, err := svc.GetDashboardStats()
	require.NoError(t, err)

	assert.Equal(t, int64(50000), stats.TodaySales)
	assert.Equal(t, int64(12000), stats.ThisMonthProfit)
	assert.Equal(t, int64(50000), stats.TotalSales)
	assert.Equal(t, int64(20), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.LowStockProducts)
	assert.Equal(t, int64(130000), stats.StockValueWhole)

	// Four bounded windows plus the unbounded all-time query.
	require.Len(t, reportRepo.summaryWindows, 5)
	today := reportRepo.summaryWindows[0]
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), *today[0])
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), *today[1])
	allTime := reportRepo.summaryWindows[4]
	assert.Nil(t, allTime[0])
	assert.Nil(t, allTime[1])
}

func TestGetSalesReportGrouped(t *testing.T) {
	reportRepo := &stubReportRepo{
		buckets: []repository.SalesBucket{{Bucket: "2026-03-14", TotalSales: 5000, Count: 2}},
		list:    []repository.SaleListRow{{InvoiceNumber: "INV-000001", Total: 5000}},
	}
	svc := newTestReportService(reportRepo, &stubExpenseRepo{}, time.Now())

	report, err := svc.GetSalesReport("daily", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "daily", reportRepo.bucketGroupBy)
	assert.Nil(t, report.Summary)
	require.Len(t, report.Buckets, 1)
	require.Len(t, report.Sales, 1)
}

func TestGetSalesReportSummary(t *testing.T) {
	reportRepo := &stubReportRepo{summary: repository.SalesSummary{TotalSales: 9000, Count: 3}}
	svc := newTestReportService(reportRepo, &stubExpenseRepo{}, time.Now())

	report, err := svc.GetSalesReport("", nil, nil)
	require.NoError(t, err)

	require.NotNil(t, report.Summary)
	assert.Equal(t, int64(9000), report.Summary.TotalSales)
	assert.Empty(t, report.Buckets)
}

func TestGetProfitReport(t *testing.T) {
	reportRepo := &stubReportRepo{summary: repository.SalesSummary{TotalSales: 100000, TotalProfit: 30000}}
	svc := newTestReportService(reportRepo, &stubExpenseRepo{total: 12000}, time.Now())

	report, err := svc.GetProfitReport(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(100000), report.TotalRevenue)
	assert.Equal(t, int64(30000), report.GrossProfit)
	assert.Equal(t, int64(12000), report.TotalExpenses)
	assert.Equal(t, int64(18000), report.NetProfit)
}

func TestGetExpenseReport(t *testing.T) {
	expenseRepo := &stubExpenseRepo{expenses: []model.Expense{
		{Category: "rent", Amount: 50000},
		{Category: "utilities", Amount: 8000},
		{Category: "rent", Amount: 50000},
	}}
	svc := newTestReportService(&stubReportRepo{}, expenseRepo, time.Now())

	report, err := svc.GetExpenseReport(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(108000), report.Total)
	assert.Equal(t, int64(100000), report.ByCategory["rent"])
	assert.Equal(t, int64(8000), report.ByCategory["utilities"])
}
