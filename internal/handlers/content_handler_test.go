package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==============================================
// MOCK SERVICE
// ==============================================

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListBlogPosts(ctx context.Context, page, limit int) (*dto.ContentListResponse, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentListResponse), args.Error(1)
}

func (m *MockContentService) GetBlogPost(ctx context.Context, slug string) (*dto.BlogPostDTO, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BlogPostDTO), args.Error(1)
}

func (m *MockContentService) ListCaseStudies(ctx context.Context, page, limit int) (*dto.ContentListResponse, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentListResponse), args.Error(1)
}

func (m *MockContentService) GetCaseStudy(ctx context.Context, slug string) (*dto.CaseStudyDTO, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CaseStudyDTO), args.Error(1)
}

func (m *MockContentService) ListEvents(ctx context.Context, page, limit int) (*dto.ContentListResponse, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ContentListResponse), args.Error(1)
}

func (m *MockContentService) GetEvent(ctx context.Context, slug string) (*dto.EventDTO, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EventDTO), args.Error(1)
}

// ==============================================
// TEST SETUP
// ==============================================

func setupContentRouter(svc ContentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewContentHandler(svc).RegisterRoutes(router)
	return router
}

func getPath(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ==============================================
// LIST ENDPOINT TESTS
// ==============================================

func TestListBlogPostsEndpoint_PaginationBound(t *testing.T) {
	mockSvc := new(MockContentService)
	mockSvc.On("ListBlogPosts", mock.Anything, 2, 5).Return(&dto.ContentListResponse{
		Items:      []dto.BlogPostDTO{},
		Pagination: dto.PaginationMeta{Page: 2, Limit: 5},
	}, nil)

	router := setupContentRouter(mockSvc)

	w := getPath(router, "/api/blogs?page=2&limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestListBlogPostsEndpoint_InvalidPaginationFallsBack(t *testing.T) {
	mockSvc := new(MockContentService)

	// Non-numeric params fail binding; the zero values reach the service,
	// which clamps them to its defaults
	mockSvc.On("ListBlogPosts", mock.Anything, 0, 0).Return(&dto.ContentListResponse{
		Items:      []dto.BlogPostDTO{},
		Pagination: dto.PaginationMeta{Page: 1, Limit: 10},
	}, nil)

	router := setupContentRouter(mockSvc)

	w := getPath(router, "/api/blogs?page=abc&limit=xyz")

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestListEventsEndpoint_DefaultPagination(t *testing.T) {
	mockSvc := new(MockContentService)
	mockSvc.On("ListEvents", mock.Anything, 0, 0).Return(&dto.ContentListResponse{
		Items:      []dto.EventDTO{},
		Pagination: dto.PaginationMeta{Page: 1, Limit: 10},
	}, nil)

	router := setupContentRouter(mockSvc)

	w := getPath(router, "/api/events")

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

// ==============================================
// GET ENDPOINT TESTS
// ==============================================

func TestGetBlogPostEndpoint_Success(t *testing.T) {
	mockSvc := new(MockContentService)
	mockSvc.On("GetBlogPost", mock.Anything, "launch-week").Return(&dto.BlogPostDTO{
		ID:   21,
		Slug: "launch-week",
		Body: "full body text",
	}, nil)

	router := setupContentRouter(mockSvc)

	w := getPath(router, "/api/blogs/launch-week")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BlogPostDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "full body text", resp.Body)
}

func TestGetBlogPostEndpoint_NotFound(t *testing.T) {
	mockSvc := new(MockContentService)
	mockSvc.On("GetBlogPost", mock.Anything, "missing").Return(nil, models.ErrContentNotFound)

	router := setupContentRouter(mockSvc)

	w := getPath(router, "/api/blogs/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Content not found", resp.Error)
}
