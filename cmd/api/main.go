package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"xavro/internal/config"
	"xavro/internal/database"
	"xavro/internal/events"
	"xavro/internal/middleware"
	"xavro/internal/modules/auth"
	"xavro/internal/modules/availability"
	"xavro/internal/modules/booking"
	"xavro/internal/modules/room"
	"xavro/internal/modules/showtime"
	jwtsvc "xavro/internal/pkg/jwt"
	"xavro/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	costRepo := repository.NewRoomCostRepository(db)
	showtimeRepo := repository.NewShowtimeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := events.NewHub()
	defer hub.Close()
	wsHandler := events.NewWSHandler(hub, j)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	availabilityService := availability.NewService(showtimeRepo, bookingRepo, roomRepo, cfg.LookaheadDays)
	availabilityHandler := availability.NewHandler(availabilityService)

	roomService := room.NewService(roomRepo, costRepo, showtimeRepo)
	roomHandler := room.NewHandler(roomService)

	showtimeService := showtime.NewService(showtimeRepo)
	showtimeHandler := showtime.NewHandler(showtimeService)

	store := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)

	// Booking changes flush the read cache so availability never serves a
	// just-taken slot as open.
	publisher := events.NewInvalidatingPublisher(hub, store)
	bookingService := booking.NewService(bookingRepo, roomRepo, customerRepo, paymentRepo, publisher)
	bookingHandler := booking.NewHandler(bookingService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst))

	api := r.Group("/api")
	{
		// public storefront surface
		public := api.Group("/")
		public.Use(middleware.Cache(store, cfg.CacheTTL))
		{
			roomHandler.RegisterPublicRoutes(public)
			showtimeHandler.RegisterPublicRoutes(public)
			availabilityHandler.RegisterRoutes(public)
		}

		// booking creation skips the response cache
		bookingPublic := api.Group("/")

		// staff surface
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterRoutes(bookingPublic, protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				roomHandler.RegisterAdminRoutes(admin)
				showtimeHandler.RegisterAdminRoutes(admin)
			}
		}

		authHandler.RegisterRoutes(api, protected)
	}

	r.GET("/ws/events", wsHandler.HandleWebSocket)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
