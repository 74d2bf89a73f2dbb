package repository

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	PrefixInvoice  = "INV"
	PrefixPurchase = "PUR"
)

type SequenceRepository interface {
	Next(tx *gorm.DB, prefix string) (string, error)
}

type sequenceRepo struct {
	db *gorm.DB
}

func NewSequenceRepo(db *gorm.DB) SequenceRepository {
	return &sequenceRepo{db}
}

// Next allocates the next document number for a prefix with a single
// atomic upsert. Run inside the creating transaction so an aborted
// document does not consume a number.
func (r *sequenceRepo) Next(tx *gorm.DB, prefix string) (string, error) {
	var value int64
	err := tx.Raw(`
		INSERT INTO document_sequences (prefix, value) VALUES (?, 1)
		ON CONFLICT (prefix) DO UPDATE SET value = document_sequences.value + 1
		RETURNING value
	`, prefix).Scan(&value).Error
	if err != nil {
		return "", err
	}
	return FormatDocumentNumber(prefix, value), nil
}

// FormatDocumentNumber renders PREFIX-NNNNNN, zero-padded to six digits.
func FormatDocumentNumber(prefix string, value int64) string {
	return fmt.Sprintf("%s-%06d", prefix, value)
}
