package item

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

// RegisterRoutes registers the item endpoints. Search and delete take no
// caller identity; everything else does.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, identity gin.HandlerFunc) {
	rg.POST("/items", identity, h.Save)
	rg.PATCH("/items/:itemId", identity, h.Update)
	rg.GET("/items/:itemId", identity, h.GetByID)
	rg.DELETE("/items/:itemId", h.Delete)
	rg.GET("/items", identity, h.ListByOwner)
	rg.GET("/items/search", h.Search)
	rg.POST("/items/:itemId/comment", identity, h.SaveComment)
}

func (h *Handler) Save(c *gin.Context) {
	ownerID := middleware.CallerID(c)

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	i, err := h.service.Save(c.Request.Context(), ownerID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, i)
}

func (h *Handler) Update(c *gin.Context) {
	ownerID := middleware.CallerID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	i, err := h.service.Update(c.Request.Context(), ownerID, itemID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, i)
}

func (h *Handler) GetByID(c *gin.Context) {
	callerID := middleware.CallerID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	detail, err := h.service.GetByID(c.Request.Context(), callerID, itemID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Delete(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), itemID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	ownerID := middleware.CallerID(c)

	items, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) SaveComment(c *gin.Context) {
	userID := middleware.CallerID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	cm, err := h.service.SaveComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	resp := toCommentResponse(cm)
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item, user or request not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the owner can edit an item")
	case errors.Is(err, ErrNotRented):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process item")
	}
}
