package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayflow/hotel-booking-backend/internal/booking"
	"github.com/stayflow/hotel-booking-backend/internal/media"
	mediaHttp "github.com/stayflow/hotel-booking-backend/internal/media/http"
	"github.com/stayflow/hotel-booking-backend/internal/offer"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/response"
	"github.com/stayflow/hotel-booking-backend/internal/room"
)

// roomImageMaxBytes caps room photo uploads at 5 MiB.
const roomImageMaxBytes = 5 << 20

type Handler struct {
	roomService    room.Service
	bookingService booking.Service
	offerService   offer.Service
	mediaHandler   *mediaHttp.Handler
}

func NewHandler(
	roomService room.Service,
	bookingService booking.Service,
	offerService offer.Service,
	mediaHandler *mediaHttp.Handler,
) *Handler {
	return &Handler{
		roomService:    roomService,
		bookingService: bookingService,
		offerService:   offerService,
		mediaHandler:   mediaHandler,
	}
}

// List retrieves a paginated list of rooms with optional filtering.
// Public endpoint.
func (h *Handler) List(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := room.Filter{
		HotelID:     req.HotelID,
		Status:      req.Status,
		MinCapacity: req.MinCapacity,
		MinPrice:    req.MinPrice,
		MaxPrice:    req.MaxPrice,
		Amenities:   req.Amenities,
		Page:        req.Page,
		PageSize:    req.PageSize,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
	}

	rooms, total, err := h.roomService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, rm := range rooms {
		items[i] = NewRoomResponse(rm)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)

	c.JSON(http.StatusOK, resp)
}

// Search finds rooms matching capacity, price, amenity and date criteria.
// Prices in the result reflect the best active special offer.
// Public endpoint.
func (h *Handler) Search(c *gin.Context) {
	var req SearchRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()

	rooms, err := h.bookingService.SearchRooms(ctx, booking.SearchCriteria{
		HotelID:   req.HotelID,
		Guests:    req.Guests,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Amenities: req.Amenities,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// A failed offer lookup degrades to undiscounted prices rather than
	// failing the search.
	discount := 0
	offers, _, err := h.offerService.List(ctx, offer.Filter{ActiveOnly: true, PageSize: 50})
	if err == nil {
		discount = offer.BestDiscount(offers)
	}

	items := make([]SearchRoomResponse, len(rooms))
	for i, rm := range rooms {
		items[i] = SearchRoomResponse{
			RoomResponse:    NewRoomResponse(rm),
			DiscountedPrice: offer.ApplyDiscount(rm.Price, discount),
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Get retrieves a specific room by its ID.
// Public endpoint.
func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	rm, err := h.roomService.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get room"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(rm))
}

// Create adds a new room to a hotel.
// Access Control: Admin only.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rm, err := h.roomService.Create(c.Request.Context(), room.CreateRequest{
		HotelID:     req.HotelID,
		Name:        req.Name,
		FloorNumber: req.FloorNumber,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Amenities:   req.Amenities,
	})
	if err != nil {
		switch {
		case errors.Is(err, room.ErrInvalidHotel):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, room.ErrEmptyName),
			errors.Is(err, room.ErrInvalidCapacity),
			errors.Is(err, room.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(rm))
}

// Update modifies specific attributes of a room.
// Access Control: Admin only.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateRoomRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rm, err := h.roomService.Update(c.Request.Context(), uri.ID, room.UpdateRequest{
		Name:      body.Name,
		Capacity:  body.Capacity,
		Price:     body.Price,
		Amenities: body.Amenities,
		Status:    body.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case errors.Is(err, room.ErrEmptyName),
			errors.Is(err, room.ErrInvalidCapacity),
			errors.Is(err, room.ErrInvalidPrice),
			errors.Is(err, room.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		}
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(rm))
}

// UploadImage stores a room photo and links it to the room.
// Access Control: Admin only.
func (h *Handler) UploadImage(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	// Existence check up front so a bad room ID fails before the upload.
	if _, err := h.roomService.GetByID(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get room"})
		}
		return
	}

	h.mediaHandler.HandleUpload(c, mediaHttp.UploadConfig{
		MaxSizeBytes: roomImageMaxBytes,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		AfterUpload: func(ctx context.Context, mediaID string) error {
			return h.roomService.SetImageURL(ctx, uri.ID, media.URL(mediaID))
		},
	})
}

// Delete removes a room.
// Access Control: Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.roomService.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
