package booking

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

// RegisterRoutes registers the booking endpoints. Every one of them acts
// on behalf of an identified caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, identity gin.HandlerFunc) {
	rg.POST("/bookings", identity, h.Create)
	rg.PATCH("/bookings/:bookingId", identity, h.Approve)
	rg.GET("/bookings/:bookingId", identity, h.GetByID)
	rg.GET("/bookings", identity, h.ListByBooker)
	rg.GET("/bookings/owner", identity, h.ListByOwner)
}

func (h *Handler) Create(c *gin.Context) {
	bookerID := middleware.CallerID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), bookerID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toResponse(b))
}

func (h *Handler) Approve(c *gin.Context) {
	ownerID := middleware.CallerID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}
	approve, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter 'approved' must be a boolean")
		return
	}

	b, err := h.service.Approve(c.Request.Context(), ownerID, bookingID, approve)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(b))
}

func (h *Handler) GetByID(c *gin.Context) {
	callerID := middleware.CallerID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), callerID, bookingID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponse(b))
}

func (h *Handler) ListByBooker(c *gin.Context) {
	userID := middleware.CallerID(c)

	bs, err := h.service.ListByBooker(c.Request.Context(), userID, c.DefaultQuery("state", "all"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponses(bs))
}

func (h *Handler) ListByOwner(c *gin.Context) {
	ownerID := middleware.CallerID(c)

	bs, err := h.service.ListByOwner(c.Request.Context(), ownerID, c.DefaultQuery("state", "all"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toResponses(bs))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking, item or user not found")
	case errors.Is(err, ErrInvalidTimeRange),
		errors.Is(err, ErrItemUnavailable),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrAlreadyDecided),
		errors.Is(err, ErrNotAuthorized),
		errors.Is(err, ErrNoItems),
		errors.Is(err, ErrUnknownState):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process booking")
	}
}
