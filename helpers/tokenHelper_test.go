package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundtrip(t *testing.T) {
	token, refreshToken, err := GenerateAllTokens("66b2f0c1e4b0a1d2c3e4f5a6", "Spice Route Catering")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, refreshToken)

	claims, msg := ValidateToken(token)
	assert.Empty(t, msg)
	assert.NotNil(t, claims)
	assert.Equal(t, "66b2f0c1e4b0a1d2c3e4f5a6", claims.Caterer_id)
	assert.Equal(t, "Spice Route Catering", claims.Business_name)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	claims, msg := ValidateToken("not-a-jwt")
	assert.NotEmpty(t, msg)
	assert.Nil(t, claims)
}
