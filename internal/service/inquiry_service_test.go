package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==============================================
// MOCK STORE
// ==============================================

type MockInquiryStore struct {
	CreateFunc       func(ctx context.Context, inquiry *models.Inquiry) error
	GetByIDFunc      func(ctx context.Context, inquiryID int) (*models.Inquiry, error)
	ListFunc         func(ctx context.Context, limit, offset int) ([]models.Inquiry, error)
	CountFunc        func(ctx context.Context) (int, error)
	UpdateStatusFunc func(ctx context.Context, inquiryID int, status string) error
	DeleteFunc       func(ctx context.Context, inquiryID int) error

	StatusCalls []string
}

func (m *MockInquiryStore) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inquiry)
	}
	inquiry.ID = 1
	inquiry.CreatedAt = time.Now()
	return nil
}

func (m *MockInquiryStore) GetByID(ctx context.Context, inquiryID int) (*models.Inquiry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, inquiryID)
	}
	return nil, models.ErrInquiryNotFound
}

func (m *MockInquiryStore) List(ctx context.Context, limit, offset int) ([]models.Inquiry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockInquiryStore) Count(ctx context.Context) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockInquiryStore) UpdateStatus(ctx context.Context, inquiryID int, status string) error {
	m.StatusCalls = append(m.StatusCalls, status)
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, inquiryID, status)
	}
	return nil
}

func (m *MockInquiryStore) Delete(ctx context.Context, inquiryID int) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, inquiryID)
	}
	return nil
}

// ==============================================
// CREATE TESTS
// ==============================================

func TestCreateInquiry_Success(t *testing.T) {
	ctx := context.Background()

	var stored *models.Inquiry
	store := &MockInquiryStore{
		CreateFunc: func(ctx context.Context, inquiry *models.Inquiry) error {
			inquiry.ID = 9
			inquiry.CreatedAt = time.Now()
			stored = inquiry
			return nil
		},
	}
	sender := &FakeSender{}

	svc := NewInquiryService(store, sender, "hello@atlasmedia.example", testLogger())

	item, err := svc.Create(ctx, dto.CreateInquiryRequest{
		Name:    "Jordan Mills",
		Email:   "Jordan@Example.COM",
		Subject: "Partnership",
		Message: "We'd like to discuss a campaign.",
	})
	require.NoError(t, err)

	assert.Equal(t, 9, item.ID)
	assert.Equal(t, models.InquiryStatusNew, item.Status)
	assert.Equal(t, "jordan@example.com", stored.Email)

	// Internal notification went to the configured inbox
	require.Len(t, sender.Sent, 1)
	assert.Equal(t, "hello@atlasmedia.example", sender.Sent[0].To)
	assert.Contains(t, sender.Sent[0].Body, "Jordan Mills")
}

func TestCreateInquiry_NotificationFailureDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	store := &MockInquiryStore{}
	sender := &FakeSender{SendErr: errors.New("smtp: connection refused")}

	svc := NewInquiryService(store, sender, "hello@atlasmedia.example", testLogger())

	item, err := svc.Create(ctx, dto.CreateInquiryRequest{
		Name:    "Jordan Mills",
		Email:   "jordan@example.com",
		Message: "Hello there.",
	})

	// The submission stands even though the notification failed
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusNew, item.Status)
}

func TestCreateInquiry_NoNotifyInboxSkipsEmail(t *testing.T) {
	ctx := context.Background()
	store := &MockInquiryStore{}
	sender := &FakeSender{}

	svc := NewInquiryService(store, sender, "", testLogger())

	_, err := svc.Create(ctx, dto.CreateInquiryRequest{
		Name:    "Jordan Mills",
		Email:   "jordan@example.com",
		Message: "Hello there.",
	})
	require.NoError(t, err)
	assert.Empty(t, sender.Sent)
}

// ==============================================
// STATUS TESTS
// ==============================================

func TestUpdateInquiryStatus(t *testing.T) {
	ctx := context.Background()
	store := &MockInquiryStore{}
	svc := NewInquiryService(store, &FakeSender{}, "", testLogger())

	require.NoError(t, svc.UpdateStatus(ctx, 9, models.InquiryStatusRead))
	require.NoError(t, svc.UpdateStatus(ctx, 9, models.InquiryStatusArchived))
	assert.Equal(t, []string{models.InquiryStatusRead, models.InquiryStatusArchived}, store.StatusCalls)

	// An unknown status never reaches the store
	err := svc.UpdateStatus(ctx, 9, "spam")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
	assert.Len(t, store.StatusCalls, 2)
}

func TestUpdateInquiryStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	store := &MockInquiryStore{
		UpdateStatusFunc: func(ctx context.Context, inquiryID int, status string) error {
			return models.ErrInquiryNotFound
		},
	}
	svc := NewInquiryService(store, &FakeSender{}, "", testLogger())

	err := svc.UpdateStatus(ctx, 404, models.InquiryStatusRead)
	assert.ErrorIs(t, err, models.ErrInquiryNotFound)
}

// ==============================================
// LIST TESTS
// ==============================================

func TestListInquiries(t *testing.T) {
	ctx := context.Background()
	store := &MockInquiryStore{
		ListFunc: func(ctx context.Context, limit, offset int) ([]models.Inquiry, error) {
			return []models.Inquiry{
				{ID: 1, Name: "Jordan Mills", Email: "jordan@example.com", Message: "Hi", Status: models.InquiryStatusNew, CreatedAt: time.Now()},
				{ID: 2, Name: "Sam Reed", Email: "sam@example.com", Message: "Hello", Status: models.InquiryStatusRead, CreatedAt: time.Now()},
			}, nil
		},
		CountFunc: func(ctx context.Context) (int, error) {
			return 2, nil
		},
	}
	svc := NewInquiryService(store, &FakeSender{}, "", testLogger())

	resp, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, models.InquiryStatusRead, resp.Items[1].Status)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}
