package model

import "time"

// AppVersion powers the desktop/mobile client update check.
type AppVersion struct {
	BaseModel
	Version      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_app_versions_platform_version" json:"version" validate:"required"`
	Platform     string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_app_versions_platform_version" json:"platform" validate:"required,oneof=android windows"`
	BuildNumber  int       `gorm:"not null" json:"build_number" validate:"required,gt=0"`
	DownloadURL  string    `gorm:"not null" json:"download_url" validate:"required,url"`
	FileSize     string    `json:"file_size"`
	ReleaseNotes string    `json:"release_notes"`
	IsMandatory  bool      `gorm:"default:false" json:"is_mandatory"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	ReleaseDate  time.Time `json:"release_date"`
}
