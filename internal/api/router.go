package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/stayflow/hotel-booking-backend/internal/auth"
	"github.com/stayflow/hotel-booking-backend/internal/booking"
	bookingHttp "github.com/stayflow/hotel-booking-backend/internal/booking/http"
	"github.com/stayflow/hotel-booking-backend/internal/hotel"
	hotelHttp "github.com/stayflow/hotel-booking-backend/internal/hotel/http"
	"github.com/stayflow/hotel-booking-backend/internal/loyalty"
	"github.com/stayflow/hotel-booking-backend/internal/media"
	mediaHttp "github.com/stayflow/hotel-booking-backend/internal/media/http"
	"github.com/stayflow/hotel-booking-backend/internal/offer"
	offerHttp "github.com/stayflow/hotel-booking-backend/internal/offer/http"
	"github.com/stayflow/hotel-booking-backend/internal/review"
	reviewHttp "github.com/stayflow/hotel-booking-backend/internal/review/http"
	"github.com/stayflow/hotel-booking-backend/internal/room"
	roomHttp "github.com/stayflow/hotel-booking-backend/internal/room/http"
	"github.com/stayflow/hotel-booking-backend/internal/user"
	userHttp "github.com/stayflow/hotel-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService    user.Service
	HotelService   hotel.Service
	RoomService    room.Service
	BookingService booking.Service
	ReviewService  review.Service
	OfferService   offer.Service
	LoyaltyService loyalty.Service
	MediaService   media.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = []string{cfg.ProdOrigins}
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the token carries the admin role.
	adminMiddleware := auth.AdminRequired()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.LoyaltyService, cfg.JWTManager)
	hotelHandler := hotelHttp.NewHandler(cfg.HotelService)
	roomHandler := roomHttp.NewHandler(cfg.RoomService, cfg.BookingService, cfg.OfferService, mediaHandler)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService)
	offerHandler := offerHttp.NewHandler(cfg.OfferService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		hotelHttp.RegisterRoutes(v1, hotelHandler, authMiddleware, adminMiddleware)
		roomHttp.RegisterRoutes(v1, roomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		reviewHttp.RegisterRoutes(v1, reviewHandler, authMiddleware)
		offerHttp.RegisterRoutes(v1, offerHandler, authMiddleware, adminMiddleware)
		mediaHttp.RegisterRoutes(v1, mediaHandler)
	}

	return r
}
