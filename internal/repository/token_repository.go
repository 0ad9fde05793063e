package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ==============================================
// TOKEN REPOSITORY
// ==============================================

type TokenRepository struct {
	db *pgxpool.Pool
}

func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// ==============================================
// CREATE TOKEN
// ==============================================

// ReplaceToken deletes any prior tokens for the email and inserts the new
// record in a single transaction. A transaction-scoped advisory lock on
// the email serializes racing issuers; under READ COMMITTED the plain
// DELETE+INSERT alone would let two transactions each miss the other's
// fresh insert and leave two active rows. The partial unique index on
// active rows backstops the invariant.
func (r *TokenRepository) ReplaceToken(ctx context.Context, token *models.ResetToken) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`,
		token.Email,
	); err != nil {
		return fmt.Errorf("failed to acquire issuance lock: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM password_reset_tokens WHERE email = $1`,
		token.Email,
	); err != nil {
		return fmt.Errorf("failed to delete prior tokens: %w", err)
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO password_reset_tokens (email, otp_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, token.Email, token.OTPHash, token.ExpiresAt)

	if err := row.Scan(&token.ID, &token.CreatedAt); err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	return tx.Commit(ctx)
}

// ==============================================
// GET TOKEN
// ==============================================

// GetActiveToken returns the unused, unexpired token for an email. The
// lookup is always scoped by email; a code can only ever match the
// account it was issued for.
func (r *TokenRepository) GetActiveToken(ctx context.Context, email string) (*models.ResetToken, error) {
	query := `
		SELECT id, email, otp_hash, expires_at, used_at, created_at
		FROM password_reset_tokens
		WHERE email = $1 AND used_at IS NULL AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var token models.ResetToken
	err := r.db.QueryRow(ctx, query, email).Scan(
		&token.ID,
		&token.Email,
		&token.OTPHash,
		&token.ExpiresAt,
		&token.UsedAt,
		&token.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return &token, nil
}

// ==============================================
// CONSUME TOKEN
// ==============================================

// ConsumeToken marks a token used. The row is locked first so the same
// token can never be consumed twice by racing requests.
func (r *TokenRepository) ConsumeToken(ctx context.Context, tokenID int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var used bool
	row := tx.QueryRow(ctx, `
		SELECT used_at IS NOT NULL
		FROM password_reset_tokens
		WHERE id = $1
		FOR UPDATE
	`, tokenID)

	if err := row.Scan(&used); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrOTPNotFound
		}
		return fmt.Errorf("failed to lock token: %w", err)
	}

	if used {
		return models.ErrOTPUsed
	}

	if _, err := tx.Exec(ctx, `
		UPDATE password_reset_tokens
		SET used_at = NOW()
		WHERE id = $1
	`, tokenID); err != nil {
		return fmt.Errorf("failed to mark token as used: %w", err)
	}

	return tx.Commit(ctx)
}

// ==============================================
// DELETE / CLEANUP
// ==============================================

// DeleteTokensForEmail voids all tokens for an email, used when delivery
// fails so no phantom valid code survives.
func (r *TokenRepository) DeleteTokensForEmail(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM password_reset_tokens WHERE email = $1`,
		email,
	)
	if err != nil {
		return fmt.Errorf("failed to delete tokens: %w", err)
	}

	return nil
}

// DeleteExpiredTokens removes expired and consumed rows older than the
// cutoff (TTL housekeeping)
func (r *TokenRepository) DeleteExpiredTokens(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		DELETE FROM password_reset_tokens
		WHERE expires_at < $1 OR (used_at IS NOT NULL AND used_at < $1)
	`

	cutoff := time.Now().Add(-olderThan)
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}
