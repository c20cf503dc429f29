package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/stayflow/hotel-booking-backend/internal/api"
	"github.com/stayflow/hotel-booking-backend/internal/auth"
	"github.com/stayflow/hotel-booking-backend/internal/booking"
	"github.com/stayflow/hotel-booking-backend/internal/hotel"
	"github.com/stayflow/hotel-booking-backend/internal/loyalty"
	"github.com/stayflow/hotel-booking-backend/internal/media"
	"github.com/stayflow/hotel-booking-backend/internal/notification"
	"github.com/stayflow/hotel-booking-backend/internal/offer"
	"github.com/stayflow/hotel-booking-backend/internal/outbox"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/retry"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/storage"
	"github.com/stayflow/hotel-booking-backend/internal/review"
	"github.com/stayflow/hotel-booking-backend/internal/room"
	"github.com/stayflow/hotel-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zap.Logger

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	StoragePath          string
	OutboxPollInterval   time.Duration
	LoyaltyBookingPoints int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Dispatcher *outbox.Dispatcher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}

	// Outbox Module
	outboxRepo := outbox.NewPgxRepository(cfg.DBPool)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Hotel Module
	hotelRepo := hotel.NewPgxRepository(cfg.DBPool)
	hotelService := hotel.NewService(hotelRepo)

	// Room Module
	roomRepo := room.NewPgxRepository(cfg.DBPool)
	roomService := room.NewService(roomRepo, hotelService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, outboxRepo, cfg.Logger, cfg.LoyaltyBookingPoints)

	// Review Module
	reviewRepo := review.NewPgxRepository(cfg.DBPool)
	reviewService := review.NewService(reviewRepo, roomService)

	// Offer Module
	offerRepo := offer.NewPgxRepository(cfg.DBPool)
	offerService := offer.NewService(offerRepo)

	// Loyalty Module
	loyaltyRepo := loyalty.NewPgxRepository(cfg.DBPool)
	loyaltyService := loyalty.NewService(loyaltyRepo)

	// Media Module
	mediaRepo := media.NewRepository(cfg.DBPool)
	mediaService := media.NewService(mediaRepo, store)

	// Outbox Dispatcher: delivers notifications and loyalty credits recorded
	// by the booking service.
	emailSink := notification.NewEmailSink(cfg.Logger)

	dispatcherConfig := outbox.DefaultDispatcherConfig()
	if cfg.OutboxPollInterval > 0 {
		dispatcherConfig.PollInterval = cfg.OutboxPollInterval
	}
	dispatcher := outbox.NewDispatcher(outboxRepo, dispatcherConfig, cfg.Logger)

	dispatcher.Handle(outbox.KindNotification, func(ctx context.Context, payload json.RawMessage) error {
		var msg notification.Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			return retry.Permanent(fmt.Errorf("malformed notification payload: %w", err))
		}
		return emailSink.Send(ctx, msg)
	})

	dispatcher.Handle(outbox.KindLoyaltyCredit, func(ctx context.Context, payload json.RawMessage) error {
		var req loyalty.CreditRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return retry.Permanent(fmt.Errorf("malformed loyalty payload: %w", err))
		}
		_, err := loyaltyService.Credit(ctx, req)
		return err
	})

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		HotelService:   hotelService,
		RoomService:    roomService,
		BookingService: bookingService,
		ReviewService:  reviewService,
		OfferService:   offerService,
		LoyaltyService: loyaltyService,
		MediaService:   mediaService,
		JWTManager:     jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Dispatcher: dispatcher,
	}, nil
}
