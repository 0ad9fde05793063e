package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ==============================================
// SERVICE INTERFACE (for testing)
// ==============================================

type InquiryService interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (*dto.InquiryDTO, error)
	List(ctx context.Context, page, limit int) (*dto.InquiryListResponse, error)
	Get(ctx context.Context, inquiryID int) (*dto.InquiryDTO, error)
	UpdateStatus(ctx context.Context, inquiryID int, status string) error
	Delete(ctx context.Context, inquiryID int) error
}

// ==============================================
// HANDLER (HTTP Layer ONLY)
// ==============================================

type InquiryHandler struct {
	service InquiryService
	authMw  *middleware.AuthMiddleware
}

func NewInquiryHandler(service InquiryService, authMw *middleware.AuthMiddleware) *InquiryHandler {
	return &InquiryHandler{service: service, authMw: authMw}
}

// ==============================================
// ENDPOINTS
// ==============================================

// Create handles POST /api/contact (public)
func (h *InquiryHandler) Create(c *gin.Context) {
	var req dto.CreateInquiryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, resp)
}

// List handles GET /api/admin/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
	page, limit := parsePagination(c)

	resp, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// Get handles GET /api/admin/inquiries/:id
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id", err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), inquiryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, resp)
}

// UpdateStatus handles PATCH /api/admin/inquiries/:id
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id", err)
		return
	}

	var req dto.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), inquiryID, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Inquiry updated",
	})
}

// Delete handles DELETE /api/admin/inquiries/:id
func (h *InquiryHandler) Delete(c *gin.Context) {
	inquiryID, err := parseInquiryID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), inquiryID); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: "Inquiry deleted",
	})
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *InquiryHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/contact", h.Create)

	admin := router.Group("/api/admin", h.authMw.RequireAuth())
	{
		admin.GET("/inquiries", h.List)
		admin.GET("/inquiries/:id", h.Get)
		admin.PATCH("/inquiries/:id", h.UpdateStatus)
		admin.DELETE("/inquiries/:id", h.Delete)
	}
}

// ==============================================
// HELPER FUNCTIONS
// ==============================================

// parseInquiryID extracts and validates id from URL parameter
func parseInquiryID(c *gin.Context) (int, error) {
	inquiryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.New("id must be a number")
	}
	if inquiryID <= 0 {
		return 0, errors.New("id must be positive")
	}
	return inquiryID, nil
}
