package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/canchalibre/field-booking/internal/cache"
	"github.com/canchalibre/field-booking/internal/config"
	"github.com/canchalibre/field-booking/internal/events"
	"github.com/canchalibre/field-booking/internal/handlers"
	infraRepo "github.com/canchalibre/field-booking/internal/infra/repository"
	"github.com/canchalibre/field-booking/internal/middleware"
	"github.com/canchalibre/field-booking/internal/sequence"
	"github.com/canchalibre/field-booking/internal/storage"
	ucBooking "github.com/canchalibre/field-booking/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	seqGen := sequence.NewDBGenerator(db)

	eventLogger := events.New(db)
	eventDispatcher := events.NewDispatcher(eventLogger)

	catalogCache := cache.NewFieldCatalogCache(rdb, cfg.CatalogCacheTTL)
	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		seqGen,
		eventDispatcher,
		cfg.VenueTimezone,
	)

	rescheduleBookingUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		eventDispatcher,
		cfg.VenueTimezone,
	)

	transitionBookingUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		eventDispatcher,
		cfg.VenueTimezone,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		cfg.VenueTimezone,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	fieldHandler := handlers.NewFieldHandler(db, catalogCache, photoStore)
	customerHandler := handlers.NewCustomerHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		createBookingUC,
		rescheduleBookingUC,
		transitionBookingUC,
		cfg.VenueTimezone,
	)

	eventLogsHandler := handlers.NewEventLogsHandler(db, cfg.VenueTimezone)

	publicHandler := handlers.NewPublicHandler(
		db,
		bookingRepo,
		catalogCache,
		availabilityUC,
		createBookingUC,
		transitionBookingUC,
		cfg.VenueTimezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (portal de clientes)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/fields", publicHandler.ListFields)
			publicAPI.GET("/fields/:id/slots", publicHandler.GetSlots)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.GET("/bookings/:reference", publicHandler.GetBooking)
			publicAPI.POST("/bookings/:reference/cancel", publicHandler.CancelBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (staff)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// CANCHAS
			// ------------------------------
			secured.GET("/fields", fieldHandler.List)
			secured.GET("/fields/:id", fieldHandler.Get)
			secured.GET("/fields/:id/slots", publicHandler.GetSlots)

			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/fields", fieldHandler.Create)
				admin.PATCH("/fields/:id", fieldHandler.Update)
				admin.POST("/fields/:id/photo", fieldHandler.UploadPhoto)
			}

			// ------------------------------
			// RESERVAS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/schedule", bookingHandler.Reschedule)
			secured.POST("/bookings/:id/:action", bookingHandler.Transition)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/customers", customerHandler.List)
			secured.GET("/customers/:id", customerHandler.Get)
			secured.GET("/customers/:id/bookings", customerHandler.Bookings)

			secured.GET("/booking-events", eventLogsHandler.List)
		}
	}
}
