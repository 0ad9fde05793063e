package models

import (
	"errors"
)

// ==============================================
// ADMIN / AUTH ERRORS
// ==============================================

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password too weak")
)

// ==============================================
// OTP ERRORS
// ==============================================

var (
	ErrOTPNotFound = errors.New("OTP not found")
	ErrOTPExpired  = errors.New("OTP has expired")
	ErrOTPInvalid  = errors.New("invalid OTP")
	ErrOTPUsed     = errors.New("OTP already used")
)

// ==============================================
// SESSION / TOKEN ERRORS
// ==============================================

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ==============================================
// DELIVERY / CONTENT ERRORS
// ==============================================

var (
	ErrDeliveryFailed  = errors.New("failed to deliver email")
	ErrContentNotFound = errors.New("content not found")
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInvalidStatus   = errors.New("invalid inquiry status")
)

// ==============================================
// ERROR CODES (for API responses)
// ==============================================

const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeOTPExpired       = "OTP_EXPIRED"
	ErrCodeOTPInvalid       = "OTP_INVALID"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeDeliveryFailed   = "DELIVERY_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// ==============================================
// HELPER FUNCTIONS
// ==============================================

// IsNotFoundError checks if error is a "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrOTPNotFound) ||
		errors.Is(err, ErrContentNotFound) ||
		errors.Is(err, ErrInquiryNotFound)
}

// IsOTPError checks if error relates to an invalid/expired/consumed OTP
func IsOTPError(err error) bool {
	return errors.Is(err, ErrOTPNotFound) ||
		errors.Is(err, ErrOTPExpired) ||
		errors.Is(err, ErrOTPInvalid) ||
		errors.Is(err, ErrOTPUsed)
}

// IsAuthError checks if error is authentication-related
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrAccountInactive) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}
