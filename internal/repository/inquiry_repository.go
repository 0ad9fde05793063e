package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ==============================================
// INQUIRY REPOSITORY
// ==============================================

type InquiryRepository struct {
	db *pgxpool.Pool
}

func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// ==============================================
// CREATE
// ==============================================

func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (name, email, phone, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.Subject,
		inquiry.Message,
		inquiry.Status,
	).Scan(&inquiry.ID, &inquiry.CreatedAt, &inquiry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// ==============================================
// READ
// ==============================================

func (r *InquiryRepository) GetByID(ctx context.Context, inquiryID int) (*models.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, subject, message, status, created_at, updated_at
		FROM inquiries
		WHERE id = $1
	`

	var inq models.Inquiry
	err := r.db.QueryRow(ctx, query, inquiryID).Scan(
		&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Subject,
		&inq.Message, &inq.Status, &inq.CreatedAt, &inq.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return &inq, nil
}

func (r *InquiryRepository) List(ctx context.Context, limit, offset int) ([]models.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, subject, message, status, created_at, updated_at
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(
			&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.Subject,
			&inq.Message, &inq.Status, &inq.CreatedAt, &inq.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, rows.Err()
}

func (r *InquiryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inquiries: %w", err)
	}
	return count, nil
}

// ==============================================
// UPDATE / DELETE
// ==============================================

func (r *InquiryRepository) UpdateStatus(ctx context.Context, inquiryID int, status string) error {
	query := `
		UPDATE inquiries
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, inquiryID, status)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrInquiryNotFound
	}

	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, inquiryID int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, inquiryID)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrInquiryNotFound
	}

	return nil
}
