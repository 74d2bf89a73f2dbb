package model

// DocumentSequence is a per-prefix atomic counter backing invoice and
// purchase numbering. It is only ever touched through a single upsert
// statement, never read-modify-write.
type DocumentSequence struct {
	Prefix string `gorm:"type:varchar(10);primaryKey" json:"prefix"`
	Value  int64  `gorm:"not null;default:0" json:"value"`
}
