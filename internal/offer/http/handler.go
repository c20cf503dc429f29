package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayflow/hotel-booking-backend/internal/offer"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	offerService offer.Service
}

func NewHandler(offerService offer.Service) *Handler {
	return &Handler{
		offerService: offerService,
	}
}

// List retrieves a paginated list of special offers.
// Public endpoint.
func (h *Handler) List(c *gin.Context) {
	var req ListOffersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offers, total, err := h.offerService.List(c.Request.Context(), offer.Filter{
		ActiveOnly: req.ActiveOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offers"})
		return
	}

	items := make([]OfferResponse, len(offers))
	for i, o := range offers {
		items[i] = NewOfferResponse(o)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)

	c.JSON(http.StatusOK, resp)
}

// Get retrieves a specific offer by its ID.
// Public endpoint.
func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	o, err := h.offerService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offer"})
		}
		return
	}

	c.JSON(http.StatusOK, NewOfferResponse(o))
}

// Create adds a new special offer.
// Access Control: Admin only.
func (h *Handler) Create(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.offerService.Create(c.Request.Context(), offer.CreateRequest{
		Title:           req.Title,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrTitleRequired), errors.Is(err, offer.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offer"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewOfferResponse(o))
}

// Update modifies specific attributes of an offer.
// Access Control: Admin only.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateOfferRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.offerService.Update(c.Request.Context(), uri.ID, offer.UpdateRequest{
		Title:           body.Title,
		Description:     body.Description,
		DiscountPercent: body.DiscountPercent,
		IsActive:        body.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		case errors.Is(err, offer.ErrTitleRequired), errors.Is(err, offer.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update offer"})
		}
		return
	}

	c.JSON(http.StatusOK, NewOfferResponse(o))
}

// Delete removes an offer.
// Access Control: Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.offerService.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, offer.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete offer"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
