package handlers

import (
	"context"
	"net/http"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/gin-gonic/gin"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type ContentService interface {
	ListBlogPosts(ctx context.Context, page, limit int) (*dto.ContentListResponse, error)
	GetBlogPost(ctx context.Context, slug string) (*dto.BlogPostDTO, error)
	ListCaseStudies(ctx context.Context, page, limit int) (*dto.ContentListResponse, error)
	GetCaseStudy(ctx context.Context, slug string) (*dto.CaseStudyDTO, error)
	ListEvents(ctx context.Context, page, limit int) (*dto.ContentListResponse, error)
	GetEvent(ctx context.Context, slug string) (*dto.EventDTO, error)
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type ContentHandler struct {
	service ContentService
}

func NewContentHandler(service ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// ==============================================
// ENDPOINTS
// ==============================================

// ListBlogPosts handles GET /api/blogs
func (h *ContentHandler) ListBlogPosts(c *gin.Context) {
	page, limit := parsePagination(c)

	resp, err := h.service.ListBlogPosts(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// GetBlogPost handles GET /api/blogs/:slug
func (h *ContentHandler) GetBlogPost(c *gin.Context) {
	resp, err := h.service.GetBlogPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ListCaseStudies handles GET /api/case-studies
func (h *ContentHandler) ListCaseStudies(c *gin.Context) {
	page, limit := parsePagination(c)

	resp, err := h.service.ListCaseStudies(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// GetCaseStudy handles GET /api/case-studies/:slug
func (h *ContentHandler) GetCaseStudy(c *gin.Context) {
	resp, err := h.service.GetCaseStudy(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ListEvents handles GET /api/events
func (h *ContentHandler) ListEvents(c *gin.Context) {
	page, limit := parsePagination(c)

	resp, err := h.service.ListEvents(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// GetEvent handles GET /api/events/:slug
func (h *ContentHandler) GetEvent(c *gin.Context) {
	resp, err := h.service.GetEvent(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *ContentHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/blogs", h.ListBlogPosts)
		api.GET("/blogs/:slug", h.GetBlogPost)
		api.GET("/case-studies", h.ListCaseStudies)
		api.GET("/case-studies/:slug", h.GetCaseStudy)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:slug", h.GetEvent)
	}
}

// ==============================================
// HELPER FUNCTIONS
// ==============================================

// parsePagination binds page/limit query parameters. Absent or invalid
// values come back zero and the service clamps them to its defaults.
func parsePagination(c *gin.Context) (int, int) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return 0, 0
	}
	return req.Page, req.Limit
}
