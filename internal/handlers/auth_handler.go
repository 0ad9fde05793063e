package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/middleware"
	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error)
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type AuthHandler struct {
	service AuthService
	authMw  *middleware.AuthMiddleware
}

func NewAuthHandler(service AuthService, authMw *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{service: service, authMw: authMw}
}

// ==============================================
// ENDPOINTS
// ==============================================

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ForgotPassword handles POST /api/admin/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.ForgotPassword(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// VerifyOTP handles POST /api/admin/verify-otp. Verification consumes
// the code, so this endpoint and reset-password are alternatives, not a
// sequence: clients changing a password send the code straight to
// reset-password.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ResetPassword handles POST /api/admin/reset-password. Verifies and
// consumes the code itself; no prior verify-otp call is needed.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.ResetPassword(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// VerifyToken handles GET /api/admin/verify - runs behind RequireAuth,
// so reaching here means the bearer token already validated
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized", errors.New("missing claims"))
		return
	}

	respondSuccess(c, http.StatusOK, dto.VerifyTokenResponse{
		Valid: true,
		User: dto.ClaimsDTO{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		},
	})
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	admin := router.Group("/api/admin")
	{
		admin.POST("/login", h.Login)
		admin.POST("/forgot-password", h.ForgotPassword)
		admin.POST("/verify-otp", h.VerifyOTP)
		admin.POST("/reset-password", h.ResetPassword)
		admin.GET("/verify", h.authMw.RequireAuth(), h.VerifyToken)
	}
}

// ==============================================
// HELPER FUNCTIONS
// ==============================================

// respondSuccess sends a successful JSON response
func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// respondError sends an error JSON response
func respondError(c *gin.Context, statusCode int, message string, err error) {
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   message,
		Message: err.Error(),
	})
}

// respondServiceError maps service errors to appropriate HTTP status codes
func respondServiceError(c *gin.Context, err error) {
	statusCode, message := mapServiceError(err)
	if statusCode == http.StatusInternalServerError {
		// Internal causes stay server-side; the client gets a generic message
		c.JSON(statusCode, dto.ErrorResponse{
			Error:   message,
			Message: message,
		})
		return
	}
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   message,
		Message: err.Error(),
	})
}

// mapServiceError maps service errors to HTTP status codes and user-facing messages
func mapServiceError(err error) (int, string) {
	switch {
	// Not found errors (404 Not Found)
	case errors.Is(err, models.ErrAdminNotFound):
		return http.StatusNotFound, "Account not found"
	case errors.Is(err, models.ErrContentNotFound):
		return http.StatusNotFound, "Content not found"
	case errors.Is(err, models.ErrInquiryNotFound):
		return http.StatusNotFound, "Inquiry not found"

	// OTP errors (400 Bad Request)
	case errors.Is(err, models.ErrOTPNotFound):
		return http.StatusBadRequest, "No valid OTP found"
	case errors.Is(err, models.ErrOTPExpired):
		return http.StatusBadRequest, "OTP has expired"
	case errors.Is(err, models.ErrOTPInvalid):
		return http.StatusBadRequest, "Invalid OTP"
	case errors.Is(err, models.ErrOTPUsed):
		return http.StatusBadRequest, "OTP already used"
	case errors.Is(err, models.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"

	// Auth errors (401 Unauthorized)
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, models.ErrAccountInactive):
		return http.StatusUnauthorized, "Account is inactive"
	case errors.Is(err, models.ErrInvalidToken), errors.Is(err, models.ErrTokenExpired):
		return http.StatusUnauthorized, "Invalid or expired token"

	// Delivery errors (500 Internal Server Error)
	case errors.Is(err, models.ErrDeliveryFailed):
		return http.StatusInternalServerError, "Failed to send email"

	// Default (500 Internal Server Error)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
