package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the request board endpoints. Single-request
// lookup is open; the rest are scoped to the caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, identity gin.HandlerFunc) {
	rg.POST("/requests", identity, h.Save)
	rg.GET("/requests", identity, h.ListOwn)
	rg.GET("/requests/all", identity, h.ListOthers)
	rg.GET("/requests/:requestId", h.GetByID)
}

func (h *Handler) Save(c *gin.Context) {
	userID := middleware.CallerID(c)

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	r, err := h.service.Save(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) ListOwn(c *gin.Context) {
	userID := middleware.CallerID(c)

	rs, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rs)
}

func (h *Handler) ListOthers(c *gin.Context) {
	userID := middleware.CallerID(c)

	rs, err := h.service.ListOthers(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rs)
}

func (h *Handler) GetByID(c *gin.Context) {
	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	r, err := h.service.GetByID(c.Request.Context(), requestID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, r)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request or user not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process request")
	}
}
