package repository

import (
	"go-invoice-pos/internal/model"

	"gorm.io/gorm"
)

type AppVersionRepository interface {
	Create(version *model.AppVersion) error
	FindLatest(platform string) (*model.AppVersion, error)
	FindAll(platform string) ([]model.AppVersion, error)
}

type appVersionRepo struct {
	db *gorm.DB
}

func NewAppVersionRepo(db *gorm.DB) AppVersionRepository {
	return &appVersionRepo{db}
}

func (r *appVersionRepo) Create(version *model.AppVersion) error {
	return r.db.Create(version).Error
}

func (r *appVersionRepo) FindLatest(platform string) (*model.AppVersion, error) {
	var version model.AppVersion
	err := r.db.Where("platform = ? AND is_active = ?", platform, true).
		Order("build_number DESC").First(&version).Error
	return &version, err
}

func (r *appVersionRepo) FindAll(platform string) ([]model.AppVersion, error) {
	q := r.db.Order("build_number DESC")
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	var versions []model.AppVersion
	err := q.Find(&versions).Error
	return versions, err
}
