package repository

import (
	"time"

	"go-invoice-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
}

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(filter ExpenseFilter) ([]model.Expense, error)
	FindByID(id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(id uuid.UUID) error
	TotalBetween(start, end *time.Time) (int64, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(filter ExpenseFilter) ([]model.Expense, error) {
	q := r.db.Preload("CreatedBy").Order("date DESC")

	if filter.StartDate != nil && filter.EndDate != nil {
		q = q.Where("date BETWEEN ? AND ?", *filter.StartDate, *filter.EndDate)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var expenses []model.Expense
	err := q.Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.Preload("CreatedBy").First(&expense, "id = ?", id).Error
	return &expense, err
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepo) TotalBetween(start, end *time.Time) (int64, error) {
	var total int64
	q := r.db.Model(&model.Expense{}).Select("COALESCE(SUM(amount), 0)")
	if start != nil && end != nil {
		q = q.Where("date BETWEEN ? AND ?", *start, *end)
	}
	err := q.Scan(&total).Error
	return total, err
}
