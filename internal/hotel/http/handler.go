package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayflow/hotel-booking-backend/internal/hotel"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	hotelService hotel.Service
}

func NewHandler(hotelService hotel.Service) *Handler {
	return &Handler{
		hotelService: hotelService,
	}
}

// List retrieves a paginated list of hotels with optional filtering.
// Public endpoint.
func (h *Handler) List(c *gin.Context) {
	var req ListHotelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := hotel.Filter{
		City:     req.City,
		Keyword:  req.Keyword,
		Active:   req.Active,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	hotels, total, err := h.hotelService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list hotels"})
		return
	}

	items := make([]HotelResponse, len(hotels))
	for i, ht := range hotels {
		items[i] = NewHotelResponse(ht)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)

	c.JSON(http.StatusOK, resp)
}

// Get retrieves a specific hotel by its ID.
// Public endpoint.
func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ht, err := h.hotelService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get hotel"})
		}
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

// Create adds a new hotel.
// Access Control: Admin only.
func (h *Handler) Create(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ht, err := h.hotelService.Create(c.Request.Context(), hotel.CreateRequest{
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrEmptyName), errors.Is(err, hotel.ErrEmptyCity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create hotel"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewHotelResponse(ht))
}

// Update modifies specific attributes of a hotel.
// Access Control: Admin only.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateHotelRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ht, err := h.hotelService.Update(c.Request.Context(), uri.ID, hotel.UpdateRequest{
		Name:        body.Name,
		City:        body.City,
		Address:     body.Address,
		Description: body.Description,
		IsActive:    body.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, hotel.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
		case errors.Is(err, hotel.ErrEmptyName), errors.Is(err, hotel.ErrEmptyCity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update hotel"})
		}
		return
	}

	c.JSON(http.StatusOK, NewHotelResponse(ht))
}

// Delete deactivates a hotel. Existing bookings are unaffected.
// Access Control: Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.hotelService.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, hotel.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "hotel not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete hotel"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
