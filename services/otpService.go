package services

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"go-catering-management/models"
)

const (
	OTPValidity        = 2 * time.Minute
	OTPRateLimitWindow = time.Hour
	OTPRateLimitMax    = 3
	MinPasswordLength  = 8
)

// GenerateOTPCode returns a uniformly random 6-digit code in [100000, 999999].
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

// IsOTPExpired reports whether the record's expiry has passed.
func IsOTPExpired(otp models.PasswordResetOTP, now time.Time) bool {
	return now.After(otp.Expires_at)
}

// IsOTPRateLimited reports whether another code may be issued given the number
// of codes already created for the email inside the trailing window.
func IsOTPRateLimited(recentCount int64) bool {
	return recentCount >= OTPRateLimitMax
}
