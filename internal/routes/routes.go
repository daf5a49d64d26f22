package routes

import (
	"context"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookingagenthq/booking-agent/internal/archive"
	"github.com/bookingagenthq/booking-agent/internal/audit"
	"github.com/bookingagenthq/booking-agent/internal/cache"
	"github.com/bookingagenthq/booking-agent/internal/calendar"
	"github.com/bookingagenthq/booking-agent/internal/config"
	"github.com/bookingagenthq/booking-agent/internal/handlers"
	infraRepo "github.com/bookingagenthq/booking-agent/internal/infra/repository"
	"github.com/bookingagenthq/booking-agent/internal/middleware"
	"github.com/bookingagenthq/booking-agent/internal/notify"
	ucCall "github.com/bookingagenthq/booking-agent/internal/usecase/call"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	deduper := cache.NewDeduper(cache.NewClient(cfg))

	notifier := notify.NewService(
		notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken),
		notify.NewSendGridSender(cfg.SendGridAPIKey),
	)

	calendarService := calendar.NewService(cfg)

	archiver := newArchiver(cfg)

	// ======================================================
	// USE CASES — CALLS
	// ======================================================
	processWebhookUC := ucCall.NewProcessWebhook(
		bookingRepo,
		deduper,
		notifier,
		calendarService,
		archiver,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	bookingHandler := handlers.NewBookingHandler(bookingRepo)
	calendarHandler := handlers.NewCalendarHandler(db, cfg, calendarService)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	webhookHandler := handlers.NewWebhookHandler(processWebhookUC)

	// ======================================================
	// WEBHOOK (called by Vapi, unauthenticated)
	// ======================================================
	r.POST("/webhook/booking", webhookHandler.HandleBooking)

	// ======================================================
	// OAUTH CALLBACK (Google redirects here)
	// ======================================================
	r.GET("/oauth/google/callback", calendarHandler.Callback)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/business", businessHandler.GetMeBusiness)
			secured.PATCH("/me/business", businessHandler.UpdateMeBusiness)

			secured.GET("/me/bookings", bookingHandler.List)

			secured.GET("/me/calendar/connect", calendarHandler.Connect)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

// newArchiver builds the S3 payload archiver, or returns nil when no bucket
// is configured so archiving silently turns off.
func newArchiver(cfg *config.Config) *archive.Archiver {
	if cfg.ArchiveS3Bucket == "" {
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		log.Printf("routes: aws config load failed, archiving disabled: %v", err)
		return nil
	}

	return archive.NewArchiver(s3.NewFromConfig(awsCfg), cfg.ArchiveS3Bucket)
}
