package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/atlasmedia/atlas-backend/internal/api/dto"
	"github.com/atlasmedia/atlas-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// allowed upload extensions; everything else is rejected
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

const maxUploadSize = 10 << 20 // 10 MiB

// ==============================================
// UPLOAD HANDLER
// ==============================================

type UploadHandler struct {
	uploadDir string
	authMw    *middleware.AuthMiddleware
}

func NewUploadHandler(uploadDir string, authMw *middleware.AuthMiddleware) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir, authMw: authMw}
}

// Upload handles POST /api/admin/upload - stores the file under a
// generated unique name and returns its access path
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Missing file", err)
		return
	}

	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "File too large",
			Message: "uploads are limited to 10MB",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Unsupported file type",
			Message: "file extension is not allowed",
		})
		return
	}

	fileName := uuid.New().String() + ext
	dst := filepath.Join(h.uploadDir, fileName)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Upload failed",
			Message: "Internal server error",
		})
		return
	}

	respondSuccess(c, http.StatusCreated, dto.UploadResponse{
		FileName: fileName,
		Path:     "/uploads/" + fileName,
		Size:     file.Size,
	})
}

// ==============================================
// ROUTE REGISTRATION
// ==============================================

func (h *UploadHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/admin/upload", h.authMw.RequireAuth(), h.Upload)
	router.Static("/uploads", h.uploadDir)
}
