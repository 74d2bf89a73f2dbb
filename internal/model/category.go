package model

type Category struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
