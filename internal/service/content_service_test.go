package service

import (
	"context"
	"database/sql"
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

type MockContentStore struct {
	ListBlogPostsFunc     func(ctx context.Context, limit, offset int) ([]models.BlogPost, error)
	CountBlogPostsFunc    func(ctx context.Context) (int, error)
	GetBlogPostBySlugFunc func(ctx context.Context, slug string) (*models.BlogPost, error)
	ListCaseStudiesFunc   func(ctx context.Context, limit, offset int) ([]models.CaseStudy, error)
	CountCaseStudiesFunc  func(ctx context.Context) (int, error)
	GetCaseStudyFunc      func(ctx context.Context, slug string) (*models.CaseStudy, error)
	ListEventsFunc        func(ctx context.Context, limit, offset int) ([]models.Event, error)
	CountEventsFunc       func(ctx context.Context) (int, error)
	GetEventBySlugFunc    func(ctx context.Context, slug string) (*models.Event, error)
}

func (m *MockContentStore) ListBlogPosts(ctx context.Context, limit, offset int) ([]models.BlogPost, error) {
	if m.ListBlogPostsFunc != nil {
		return m.ListBlogPostsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockContentStore) CountBlogPosts(ctx context.Context) (int, error) {
	if m.CountBlogPostsFunc != nil {
		return m.CountBlogPostsFunc(ctx)
	}
	return 0, nil
}

func (m *MockContentStore) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	if m.GetBlogPostBySlugFunc != nil {
		return m.GetBlogPostBySlugFunc(ctx, slug)
	}
	return nil, models.ErrContentNotFound
}

func (m *MockContentStore) ListCaseStudies(ctx context.Context, limit, offset int) ([]models.CaseStudy, error) {
	if m.ListCaseStudiesFunc != nil {
		return m.ListCaseStudiesFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockContentStore) CountCaseStudies(ctx context.Context) (int, error) {
	if m.CountCaseStudiesFunc != nil {
		return m.CountCaseStudiesFunc(ctx)
	}
	return 0, nil
}

func (m *MockContentStore) GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	if m.GetCaseStudyFunc != nil {
		return m.GetCaseStudyFunc(ctx, slug)
	}
	return nil, models.ErrContentNotFound
}

func (m *MockContentStore) ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *MockContentStore) CountEvents(ctx context.Context) (int, error) {
	if m.CountEventsFunc != nil {
		return m.CountEventsFunc(ctx)
	}
	return 0, nil
}

func (m *MockContentStore) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	if m.GetEventBySlugFunc != nil {
		return m.GetEventBySlugFunc(ctx, slug)
	}
	return nil, models.ErrContentNotFound
}

// ==============================================
// PAGINATION TESTS
// ==============================================

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults for zero values", 0, 0, 1, 10, 0},
		{"negative values clamped", -3, -10, 1, 10, 0},
		{"valid values pass through", 3, 20, 3, 20, 40},
		{"limit capped at max", 1, 500, 1, 100, 0},
		{"second page offset", 2, 10, 2, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 5, totalPages(41, 10))
}

// ==============================================
// LIST / GET TESTS
// ==============================================

func TestListBlogPosts(t *testing.T) {
	ctx := context.Background()

	store := &MockContentStore{
		ListBlogPostsFunc: func(ctx context.Context, limit, offset int) ([]models.BlogPost, error) {
			assert.Equal(t, 10, limit)
			assert.Equal(t, 10, offset)
			return []models.BlogPost{
				{
					ID:      21,
					Slug:    "launch-week",
					Title:   "Launch Week",
					Body:    "full body text",
					Author:  "Ada Okafor",
					Excerpt: sql.NullString{String: "short teaser", Valid: true},
				},
			}, nil
		},
		CountBlogPostsFunc: func(ctx context.Context) (int, error) {
			return 23, nil
		},
	}

	svc := NewContentService(store)

	resp, err := svc.ListBlogPosts(ctx, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 23, resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)

	items, ok := resp.Items.([]dto.BlogPostDTO)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "launch-week", items[0].Slug)
	assert.Equal(t, "short teaser", items[0].Excerpt)

	// List view omits the body
	assert.Empty(t, items[0].Body)
}

func TestGetBlogPost(t *testing.T) {
	ctx := context.Background()

	store := &MockContentStore{
		GetBlogPostBySlugFunc: func(ctx context.Context, slug string) (*models.BlogPost, error) {
			require.Equal(t, "launch-week", slug)
			return &models.BlogPost{
				ID:    21,
				Slug:  "launch-week",
				Title: "Launch Week",
				Body:  "full body text",
			}, nil
		},
	}

	svc := NewContentService(store)

	item, err := svc.GetBlogPost(ctx, "launch-week")
	require.NoError(t, err)
	assert.Equal(t, "full body text", item.Body)
}

func TestGetBlogPost_NotFound(t *testing.T) {
	svc := NewContentService(&MockContentStore{})

	_, err := svc.GetBlogPost(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrContentNotFound)
}

func TestListEvents(t *testing.T) {
	ctx := context.Background()
	starts := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

	store := &MockContentStore{
		ListEventsFunc: func(ctx context.Context, limit, offset int) ([]models.Event, error) {
			return []models.Event{
				{
					ID:          3,
					Slug:        "brand-summit",
					Title:       "Brand Summit",
					Description: "Annual gathering",
					StartsAt:    starts,
					Location:    sql.NullString{String: "Lagos", Valid: true},
				},
			}, nil
		},
		CountEventsFunc: func(ctx context.Context) (int, error) {
			return 1, nil
		},
	}

	svc := NewContentService(store)

	resp, err := svc.ListEvents(ctx, 1, 10)
	require.NoError(t, err)

	items, ok := resp.Items.([]dto.EventDTO)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "Lagos", items[0].Location)
	assert.Equal(t, "2026-09-14T09:00:00Z", items[0].StartsAt)
	assert.Empty(t, items[0].EndsAt)
}

func TestGetCaseStudy(t *testing.T) {
	store := &MockContentStore{
		GetCaseStudyFunc: func(ctx context.Context, slug string) (*models.CaseStudy, error) {
			return &models.CaseStudy{
				ID:     5,
				Slug:   "retail-rebrand",
				Title:  "Retail Rebrand",
				Client: "Acme Stores",
				Body:   "case study body",
			}, nil
		},
	}

	svc := NewContentService(store)

	item, err := svc.GetCaseStudy(context.Background(), "retail-rebrand")
	require.NoError(t, err)
	assert.Equal(t, "Acme Stores", item.Client)
	assert.Equal(t, "case study body", item.Body)
}
