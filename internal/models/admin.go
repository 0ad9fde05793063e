package models

import (
	"database/sql"
	"strings"
	"time"
)

// ==============================================
// ADMIN MODEL (Database mapping)
// ==============================================

// Admin represents a CMS administrator account
type Admin struct {
	ID           int          `db:"id"`
	Email        string       `db:"email"` // stored lowercased, unique
	PasswordHash string       `db:"password_hash"`
	FirstName    string       `db:"first_name"`
	LastName     string       `db:"last_name"`
	Role         string       `db:"role"`
	IsActive     bool         `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	LastLoginAt  sql.NullTime `db:"last_login_at"`
}

// ==============================================
// ROLES
// ==============================================

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// IsValidRole reports whether role belongs to the closed role set
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}

// NormalizeEmail lowercases and trims an email for lookups and storage
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
