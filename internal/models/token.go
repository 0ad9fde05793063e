package models

import (
	"database/sql"
	"time"
)

// ==============================================
// PASSWORD RESET TOKEN MODEL
// ==============================================

// ResetToken is a persisted one-time passcode record. Only the bcrypt
// hash of the code is ever stored.
type ResetToken struct {
	ID        int          `db:"id"`
	Email     string       `db:"email"` // case-normalized owner
	OTPHash   string       `db:"otp_hash"`
	ExpiresAt time.Time    `db:"expires_at"`
	UsedAt    sql.NullTime `db:"used_at"`
	CreatedAt time.Time    `db:"created_at"`
}

// ==============================================
// TOKEN STATE
// ==============================================

// TokenState is derived from the stored fields rather than re-checked
// ad hoc by every caller.
type TokenState string

const (
	TokenActive   TokenState = "active"
	TokenConsumed TokenState = "consumed"
	TokenExpired  TokenState = "expired"
)

func (t *ResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

func (t *ResetToken) IsUsed() bool {
	return t.UsedAt.Valid
}

// State returns the lifecycle state of the token. A consumed token stays
// consumed even once its expiry elapses.
func (t *ResetToken) State() TokenState {
	if t.IsUsed() {
		return TokenConsumed
	}
	if t.IsExpired() {
		return TokenExpired
	}
	return TokenActive
}

// ==============================================
// OTP CONFIGURATION
// ==============================================

const (
	OTPLength        = 6
	OTPExpiryMinutes = 15
)
