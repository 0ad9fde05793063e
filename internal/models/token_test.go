package models

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetTokenState(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token ResetToken
		want  TokenState
	}{
		{
			name: "unused and unexpired is active",
			token: ResetToken{
				ExpiresAt: now.Add(10 * time.Minute),
			},
			want: TokenActive,
		},
		{
			name: "used is consumed",
			token: ResetToken{
				ExpiresAt: now.Add(10 * time.Minute),
				UsedAt:    sql.NullTime{Time: now, Valid: true},
			},
			want: TokenConsumed,
		},
		{
			name: "past expiry is expired",
			token: ResetToken{
				ExpiresAt: now.Add(-time.Minute),
			},
			want: TokenExpired,
		},
		{
			name: "consumed wins over expired",
			token: ResetToken{
				ExpiresAt: now.Add(-time.Minute),
				UsedAt:    sql.NullTime{Time: now.Add(-2 * time.Minute), Valid: true},
			},
			want: TokenConsumed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.token.State())
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@example.com", NormalizeEmail("  Admin@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleAdmin))
	assert.True(t, IsValidRole(RoleSuperAdmin))
	assert.False(t, IsValidRole("editor"))
	assert.False(t, IsValidRole(""))
}
