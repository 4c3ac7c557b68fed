package session

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

// RegisterRoutes registers session routes under the protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	sessions := protected.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.GET("", h.List)
		sessions.GET("/:id", h.Get)
		sessions.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	if owner == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.Create(c.Request.Context(), owner, req)
	if err != nil {
		if errors.Is(err, ErrTitleRequired) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create session")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

func (h *Handler) List(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	if owner == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sessions, err := h.service.List(c.Request.Context(), owner)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list sessions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *Handler) Get(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	if owner == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return
	}

	sess, err := h.service.Get(c.Request.Context(), owner, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to get session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

func (h *Handler) Delete(c *gin.Context) {
	owner := middleware.CurrentUser(c)
	if owner == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid session ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), owner, id); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Session not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete session")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Session deleted successfully"})
}
