package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := GenerateToken(userID, "cashier@example.com", "Cashier", "cashier")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "cashier@example.com", claims.Email)
	assert.Equal(t, "cashier", claims.Role)
	assert.Equal(t, "go-invoice-pos", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken(uuid.New(), "a@b.com", "A", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
