package models

import (
	"database/sql"
	"time"
)

// ==============================================
// INQUIRY MODEL
// ==============================================

// Inquiry represents a contact form submission
type Inquiry struct {
	ID        int            `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Subject   sql.NullString `db:"subject"`
	Message   string         `db:"message"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// ==============================================
// INQUIRY STATUS
// ==============================================

const (
	InquiryStatusNew      = "new"
	InquiryStatusRead     = "read"
	InquiryStatusArchived = "archived"
)

// IsValidInquiryStatus reports whether status belongs to the closed set
func IsValidInquiryStatus(status string) bool {
	switch status {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusArchived:
		return true
	}
	return false
}
