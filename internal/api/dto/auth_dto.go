package dto

// ==============================================
// AUTH REQUEST DTOs
// ==============================================

// LoginRequest - Admin email + password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// ForgotPasswordRequest - Initiate password reset via email OTP
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest - Check a submitted reset code. The email scopes the
// lookup so a code only ever matches the account it was issued for.
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

// ResetPasswordRequest - Complete password reset with OTP
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// ==============================================
// AUTH RESPONSE DTOs
// ==============================================

// LoginResponse
type LoginResponse struct {
	User        *AdminDTO `json:"user"`
	AccessToken string    `json:"access_token"`
	ExpiresIn   int       `json:"expires_in"` // seconds
	TokenType   string    `json:"token_type"` // "Bearer"
}

// ForgotPasswordResponse
type ForgotPasswordResponse struct {
	Message   string `json:"message"`
	ExpiresIn int    `json:"expires_in"`        // seconds until OTP expires
	DebugOTP  string `json:"debug_otp,omitempty"` // only populated when OTP_DEBUG_ECHO is set
}

// VerifyOTPResponse
type VerifyOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ResetPasswordResponse
type ResetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// VerifyTokenResponse - Claims echoed back from a valid bearer token
type VerifyTokenResponse struct {
	Valid bool      `json:"valid"`
	User  ClaimsDTO `json:"user"`
}

// ==============================================
// SUPPORTING DTOs
// ==============================================

// AdminDTO - Safe admin representation
type AdminDTO struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"` // ISO 8601
}

// ClaimsDTO - Identity extracted from a session token
type ClaimsDTO struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
