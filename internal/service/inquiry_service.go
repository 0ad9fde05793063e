package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// ==============================================
// STORE INTERFACE (for testing)
// ==============================================

type InquiryStore interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, inquiryID int) (*models.Inquiry, error)
	List(ctx context.Context, limit, offset int) ([]models.Inquiry, error)
	Count(ctx context.Context) (int, error)
	UpdateStatus(ctx context.Context, inquiryID int, status string) error
	Delete(ctx context.Context, inquiryID int) error
}

// ==============================================
// INQUIRY SERVICE
// ==============================================

type InquiryService struct {
	store       InquiryStore
	emailSender EmailSender
	notifyTo    string // internal inbox for new-inquiry notifications; empty disables
	logger      *logrus.Logger
}

func NewInquiryService(store InquiryStore, emailSender EmailSender, notifyTo string, logger *logrus.Logger) *InquiryService {
	return &InquiryService{
		store:       store,
		emailSender: emailSender,
		notifyTo:    notifyTo,
		logger:      logger,
	}
}

// ==============================================
// CREATE
// ==============================================

func (s *InquiryService) Create(ctx context.Context, req dto.CreateInquiryRequest) (*dto.InquiryDTO, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	inquiry := &models.Inquiry{
		Name:    req.Name,
		Email:   models.NormalizeEmail(req.Email),
		Message: req.Message,
		Status:  models.InquiryStatusNew,
	}
	if req.Phone != "" {
		inquiry.Phone = sql.NullString{String: req.Phone, Valid: true}
	}
	if req.Subject != "" {
		inquiry.Subject = sql.NullString{String: req.Subject, Valid: true}
	}

	if err := s.store.Create(dbCtx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	// Notification is best effort; the submission stands either way
	if s.notifyTo != "" {
		subject, body := InquiryNotificationEmail(inquiry.Name, inquiry.Email, req.Subject, inquiry.Message)
		sendCtx, cancelSend := context.WithTimeout(ctx, sendTimeout)
		defer cancelSend()
		if err := s.emailSender.Send(sendCtx, s.notifyTo, subject, body); err != nil {
			s.logger.WithError(err).Warn("Failed to send inquiry notification email")
		}
	}

	item := inquiryToDTO(inquiry)
	return &item, nil
}

// ==============================================
// READ
// ==============================================

func (s *InquiryService) List(ctx context.Context, page, limit int) (*dto.InquiryListResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	page, limit, offset := NormalizePagination(page, limit)

	inquiries, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	items := make([]dto.InquiryDTO, 0, len(inquiries))
	for i := range inquiries {
		items = append(items, inquiryToDTO(&inquiries[i]))
	}

	return &dto.InquiryListResponse{
		Items: items,
		Pagination: dto.PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

func (s *InquiryService) Get(ctx context.Context, inquiryID int) (*dto.InquiryDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	inquiry, err := s.store.GetByID(ctx, inquiryID)
	if err != nil {
		return nil, err
	}

	item := inquiryToDTO(inquiry)
	return &item, nil
}

// ==============================================
// UPDATE / DELETE
// ==============================================

func (s *InquiryService) UpdateStatus(ctx context.Context, inquiryID int, status string) error {
	if !models.IsValidInquiryStatus(status) {
		return models.ErrInvalidStatus
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return s.store.UpdateStatus(ctx, inquiryID, status)
}

func (s *InquiryService) Delete(ctx context.Context, inquiryID int) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return s.store.Delete(ctx, inquiryID)
}

// ==============================================
// DTO MAPPING
// ==============================================

func inquiryToDTO(inq *models.Inquiry) dto.InquiryDTO {
	item := dto.InquiryDTO{
		ID:        inq.ID,
		Name:      inq.Name,
		Email:     inq.Email,
		Message:   inq.Message,
		Status:    inq.Status,
		CreatedAt: inq.CreatedAt.Format(time.RFC3339),
	}

	if inq.Phone.Valid {
		item.Phone = inq.Phone.String
	}
	if inq.Subject.Valid {
		item.Subject = inq.Subject.String
	}

	return item
}
