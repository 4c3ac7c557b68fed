package upload

import (
	"errors"
	"net/http"
	"strconv"

	"echocast/internal/middleware"
	"echocast/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers upload routes under the protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	uploads := protected.Group("/upload")
	{
		uploads.POST("", h.Upload)
		uploads.POST("/session/:id", h.UploadToSession)
	}
}

// Upload accepts a multipart file with an optional session_id form field.
func (h *Handler) Upload(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	if owner == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	var sessionID *int64
	if raw := c.PostForm("session_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
			return
		}
		sessionID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to open uploaded file")
		return
	}
	defer file.Close()

	result, err := h.service.Accept(c.Request.Context(), owner, sessionID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		h.writeUploadError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message":    "File uploaded successfully",
		"filename":   result.Filename,
		"file_path":  result.FilePath,
		"file_size":  result.FileSize,
		"session_id": result.SessionID,
	})
}

// UploadToSession uploads directly to one session and returns the refreshed
// session record.
func (h *Handler) UploadToSession(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	if owner == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sessionID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to open uploaded file")
		return
	}
	defer file.Close()

	sess, err := h.service.AcceptForSession(c.Request.Context(), owner, sessionID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		h.writeUploadError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) writeUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		response.Error(c, http.StatusBadRequest, "UNSUPPORTED_TYPE", "File type is not allowed")
	case errors.Is(err, ErrEmptyFile):
		response.Error(c, http.StatusBadRequest, "EMPTY_FILE", "File is empty")
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds maximum allowed size")
	case errors.Is(err, ErrSessionNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
	default:
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to upload file")
	}
}
