package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "INV-000001", FormatDocumentNumber(PrefixInvoice, 1))
	assert.Equal(t, "PUR-000042", FormatDocumentNumber(PrefixPurchase, 42))
	assert.Equal(t, "INV-123456", FormatDocumentNumber(PrefixInvoice, 123456))
	// Values past the pad width keep growing rather than truncating.
	assert.Equal(t, "INV-1234567", FormatDocumentNumber(PrefixInvoice, 1234567))
}
