package service

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/auth"
	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// dbTimeout bounds individual store round-trips; sendTimeout bounds the
// outbound SMTP call (at-most-once, no automatic retry).
const (
	dbTimeout   = 5 * time.Second
	sendTimeout = 15 * time.Second
)

// ==============================================
// STORE INTERFACES (for testing)
// ==============================================

type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, adminID int) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, adminID int) error
	UpdatePassword(ctx context.Context, adminID int, passwordHash string) error
}

type TokenStore interface {
	ReplaceToken(ctx context.Context, token *models.ResetToken) error
	GetActiveToken(ctx context.Context, email string) (*models.ResetToken, error)
	ConsumeToken(ctx context.Context, tokenID int) error
	DeleteTokensForEmail(ctx context.Context, email string) error
}

// ==============================================
// AUTH SERVICE
// ==============================================

type AuthService struct {
	adminStore   AdminStore
	tokenStore   TokenStore
	emailSender  EmailSender
	logger       *logrus.Logger
	jwtSecret    string
	jwtExpiry    time.Duration
	otpDebugEcho bool
}

func NewAuthService(
	adminStore AdminStore,
	tokenStore TokenStore,
	emailSender EmailSender,
	logger *logrus.Logger,
	jwtSecret string,
	jwtExpiry time.Duration,
	otpDebugEcho bool,
) *AuthService {
	return &AuthService{
		adminStore:   adminStore,
		tokenStore:   tokenStore,
		emailSender:  emailSender,
		logger:       logger,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		otpDebugEcho: otpDebugEcho,
	}
}

// ==============================================
// LOGIN
// ==============================================

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	admin, err := s.adminStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if models.IsNotFoundError(err) {
			// Same error for unknown email and wrong password
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if !admin.IsActive {
		return nil, models.ErrAccountInactive
	}

	if !auth.CheckPassword(req.Password, admin.PasswordHash) {
		return nil, models.ErrInvalidCredentials
	}

	if err := s.adminStore.UpdateLastLogin(ctx, admin.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	token, expiresIn, err := auth.GenerateJWT(admin.ID, admin.Email, admin.Role, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		User:        s.adminToDTO(admin),
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
	}, nil
}

// ==============================================
// FORGOT PASSWORD (OTP ISSUANCE)
// ==============================================

// ForgotPassword issues a one-time reset code for a known admin email.
// Prior tokens for the email are replaced so exactly one active token
// exists afterward. Only the bcrypt hash of the code is persisted.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (*dto.ForgotPasswordResponse, error) {
	email := models.NormalizeEmail(req.Email)

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	admin, err := s.adminStore.GetByEmail(dbCtx, email)
	if err != nil {
		if models.IsNotFoundError(err) {
			return nil, models.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}

	otpHash, err := auth.HashOTP(code)
	if err != nil {
		return nil, fmt.Errorf("failed to hash OTP: %w", err)
	}

	token := &models.ResetToken{
		Email:     email,
		OTPHash:   otpHash,
		ExpiresAt: time.Now().Add(models.OTPExpiryMinutes * time.Minute),
	}

	if err := s.tokenStore.ReplaceToken(dbCtx, token); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}

	subject, body := ResetOTPEmail(code)

	sendCtx, cancelSend := context.WithTimeout(ctx, sendTimeout)
	defer cancelSend()

	if err := s.emailSender.Send(sendCtx, admin.Email, subject, body); err != nil {
		s.logger.WithError(err).WithField("email", admin.Email).Error("Failed to send reset OTP email")

		// Void the token: a code the user never received must not stay valid
		cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), dbTimeout)
		defer cancelCleanup()
		if delErr := s.tokenStore.DeleteTokensForEmail(cleanupCtx, email); delErr != nil {
			s.logger.WithError(delErr).WithField("email", admin.Email).Error("Failed to void undelivered token")
		}

		return nil, models.ErrDeliveryFailed
	}

	resp := &dto.ForgotPasswordResponse{
		Message:   "Password reset code sent to your email",
		ExpiresIn: models.OTPExpiryMinutes * 60,
	}

	if s.otpDebugEcho {
		resp.DebugOTP = code
	}

	return resp, nil
}

// ==============================================
// VERIFY OTP
// ==============================================

// VerifyOTP checks a submitted code against the active token for the
// email and consumes it on success. A mismatched code leaves the token
// usable for a later correct attempt.
//
// Consumption makes VerifyOTP and ResetPassword alternative terminal
// steps for a code: a verified code cannot be presented again, so a
// client that wants a new password calls ResetPassword directly.
func (s *AuthService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (*dto.VerifyOTPResponse, error) {
	email := models.NormalizeEmail(req.Email)

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	token, err := s.tokenStore.GetActiveToken(ctx, email)
	if err != nil {
		if models.IsNotFoundError(err) {
			return nil, models.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	if !auth.CheckOTP(req.OTP, token.OTPHash) {
		return nil, models.ErrOTPInvalid
	}

	if err := s.tokenStore.ConsumeToken(ctx, token.ID); err != nil {
		if models.IsOTPError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	return &dto.VerifyOTPResponse{
		Success: true,
		Message: "OTP verified successfully",
	}, nil
}

// ==============================================
// RESET PASSWORD
// ==============================================

// ResetPassword verifies and consumes a valid OTP and rewrites the
// admin's password. It needs no prior VerifyOTP call; verification
// would already have consumed the code.
func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	email := models.NormalizeEmail(req.Email)

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	token, err := s.tokenStore.GetActiveToken(ctx, email)
	if err != nil {
		if models.IsNotFoundError(err) {
			return nil, models.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	if !auth.CheckOTP(req.OTP, token.OTPHash) {
		return nil, models.ErrOTPInvalid
	}

	admin, err := s.adminStore.GetByEmail(ctx, email)
	if err != nil {
		if models.IsNotFoundError(err) {
			return nil, models.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if err := s.tokenStore.ConsumeToken(ctx, token.ID); err != nil {
		if models.IsOTPError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.adminStore.UpdatePassword(ctx, admin.ID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	return &dto.ResetPasswordResponse{
		Success: true,
		Message: "Password reset successfully. You can now login with your new password.",
	}, nil
}

// ==============================================
// HELPER FUNCTIONS
// ==============================================

func (s *AuthService) adminToDTO(admin *models.Admin) *dto.AdminDTO {
	return &dto.AdminDTO{
		ID:        admin.ID,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt.Format(time.RFC3339),
	}
}
