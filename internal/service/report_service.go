package service

import (
	"time"

	"go-invoice-pos/internal/model"
	"go-invoice-pos/internal/repository"
)

// DashboardStats is the overview card payload.
type DashboardStats struct {
	TotalSales       int64 `json:"total_sales"`
	TodaySales       int64 `json:"today_sales"`
	TodayProfit      int64 `json:"today_profit"`
	YesterdaySales   int64 `json:"yesterday_sales"`
	YesterdayProfit  int64 `json:"yesterday_profit"`
	Last7DaysSales   int64 `json:"last_7_days_sales"`
	Last7DaysProfit  int64 `json:"last_7_days_profit"`
	ThisMonthSales   int64 `json:"this_month_sales"`
	ThisMonthProfit  int64 `json:"this_month_profit"`
	TotalProducts    int64 `json:"total_products"`
	InStockProducts  int64 `json:"in_stock_products"`
	OutOfStock       int64 `json:"out_of_stock_products"`
	LowStockProducts int64 `json:"low_stock_products"`
	StockValueCost   int64 `json:"stock_value_cost"`
	StockValueRetail int64 `json:"stock_value_retail"`
	StockValueWhole  int64 `json:"stock_value_wholesale"`
}

type SalesReport struct {
	Summary *repository.SalesSummary `json:"summary,omitempty"`
	Buckets []repository.SalesBucket `json:"buckets,omitempty"`
	Sales   []repository.SaleListRow `json:"sales"`
}

type ProfitReport struct {
	TotalRevenue  int64 `json:"total_revenue"`
	GrossProfit   int64 `json:"gross_profit"`
	TotalExpenses int64 `json:"total_expenses"`
	NetProfit     int64 `json:"net_profit"`
}

type ExpenseReport struct {
	Expenses   []model.Expense  `json:"expenses"`
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
}

type ReportService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetSalesReport(groupBy string, start, end *time.Time) (*SalesReport, error)
	GetProfitReport(start, end *time.Time) (*ProfitReport, error)
	GetExpenseReport(start, end *time.Time) (*ExpenseReport, error)
}

type reportService struct {
	reportRepo  repository.ReportRepository
	expenseRepo repository.ExpenseRepository
	now         func() time.Time
}

func NewReportService(reportRepo repository.ReportRepository, expenseRepo repository.ExpenseRepository) ReportService {
	return &reportService{
		reportRepo:  reportRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

func (s *reportService) GetDashboardStats() (*DashboardStats, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)
	last7 := today.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats := &DashboardStats{}

	windows := []struct {
		start, end time.Time
		sales      *int64
		profit     *int64
	}{
		{today, tomorrow, &stats.TodaySales, &stats.TodayProfit},
		{yesterday, today, &stats.YesterdaySales, &stats.YesterdayProfit},
		{last7, tomorrow, &stats.Last7DaysSales, &stats.Last7DaysProfit},
		{monthStart, monthEnd, &stats.ThisMonthSales, &stats.ThisMonthProfit},
	}
	for _, w := range windows {
		summary, err := s.reportRepo.GetSalesSummary(&w.start, &w.end)
		if err != nil {
			return nil, err
		}
		*w.sales = summary.TotalSales
		*w.profit = summary.TotalProfit
	}

	allTime, err := s.reportRepo.GetSalesSummary(nil, nil)
	if err != nil {
		return nil, err
	}
	stats.TotalSales = allTime.TotalSales

	counts, err := s.reportRepo.GetProductCounts()
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = counts.Total
	stats.InStockProducts = counts.InStock
	stats.OutOfStock = counts.OutOfStock
	stats.LowStockProducts = counts.LowStock

	valuation, err := s.reportRepo.GetStockValuation()
	if err != nil {
		return nil, err
	}
	stats.StockValueCost = valuation.Cost
	stats.StockValueRetail = valuation.Retail
	stats.StockValueWhole = valuation.Wholesale

	return stats, nil
}

// GetSalesReport groups by day or month when asked; otherwise it returns a
// single summary. The flat sale list is included either way.
func (s *reportService) GetSalesReport(groupBy string, start, end *time.Time) (*SalesReport, error) {
	report := &SalesReport{}

	switch groupBy {
	case "daily", "monthly":
		buckets, err := s.reportRepo.GetSalesBuckets(groupBy, start, end)
		if err != nil {
			return nil, err
		}
		report.Buckets = buckets
	default:
		summary, err := s.reportRepo.GetSalesSummary(start, end)
		if err != nil {
			return nil, err
		}
		report.Summary = summary
	}

	sales, err := s.reportRepo.GetSalesList(start, end)
	if err != nil {
		return nil, err
	}
	report.Sales = sales

	return report, nil
}

func (s *reportService) GetProfitReport(start, end *time.Time) (*ProfitReport, error) {
	summary, err := s.reportRepo.GetSalesSummary(start, end)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.TotalBetween(start, end)
	if err != nil {
		return nil, err
	}

	return &ProfitReport{
		TotalRevenue:  summary.TotalSales,
		GrossProfit:   summary.TotalProfit,
		TotalExpenses: expenses,
		NetProfit:     summary.TotalProfit - expenses,
	}, nil
}

func (s *reportService) GetExpenseReport(start, end *time.Time) (*ExpenseReport, error) {
	expenses, err := s.expenseRepo.FindAll(repository.ExpenseFilter{StartDate: start, EndDate: end})
	if err != nil {
		return nil, err
	}

	report := &ExpenseReport{
		Expenses:   expenses,
		ByCategory: make(map[string]int64),
	}
	for _, e := range expenses {
		report.Total += e.Amount
		report.ByCategory[e.Category] += e.Amount
	}

	return report, nil
}
