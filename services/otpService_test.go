package services

import (
	"strconv"
	"testing"
	"time"

	"go-catering-management/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTPCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOTPCode()
		assert.NoError(t, err)
		assert.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestIsOTPExpired(t *testing.T) {
	issued := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	otp := models.PasswordResetOTP{
		Email:      "caterer@example.com",
		Code:       "123456",
		Expires_at: issued.Add(OTPValidity),
		Created_at: issued,
	}

	assert.False(t, IsOTPExpired(otp, issued.Add(119*time.Second)))
	assert.False(t, IsOTPExpired(otp, issued.Add(120*time.Second)), "expiry instant itself is still valid")
	assert.True(t, IsOTPExpired(otp, issued.Add(121*time.Second)))
}

func TestIsOTPRateLimited(t *testing.T) {
	assert.False(t, IsOTPRateLimited(0))
	assert.False(t, IsOTPRateLimited(2), "first three requests in the window succeed")
	assert.True(t, IsOTPRateLimited(3), "fourth request is throttled")
	assert.True(t, IsOTPRateLimited(10))
}
