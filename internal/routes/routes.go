package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/cache"
	"github.com/SpinCityEvents/gig-manager/internal/config"
	"github.com/SpinCityEvents/gig-manager/internal/handlers"
	infraRepo "github.com/SpinCityEvents/gig-manager/internal/infra/repository"
	"github.com/SpinCityEvents/gig-manager/internal/integrations/square"
	"github.com/SpinCityEvents/gig-manager/internal/middleware"
	"github.com/SpinCityEvents/gig-manager/internal/storage"
	ucGig "github.com/SpinCityEvents/gig-manager/internal/usecase/gig"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, c *cache.Cache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	gigRepo := infraRepo.NewGigGormRepository(db)
	uploader := storage.NewUploader(cfg)
	squareClient := square.NewClient(cfg)
	squareSync := square.NewSyncService(squareClient, db)

	// ======================================================
	// USE CASES — GIGS
	// ======================================================
	createGigUC := ucGig.NewCreateGig(gigRepo)
	rescheduleGigUC := ucGig.NewRescheduleGig(gigRepo)
	confirmGigUC := ucGig.NewConfirmGig(gigRepo)
	cancelGigUC := ucGig.NewCancelGig(gigRepo, cfg.Timezone)
	completeGigUC := ucGig.NewCompleteGig(gigRepo, cfg.Timezone)
	listGigsByDateUC := ucGig.NewListGigsByDate(gigRepo, cfg.Timezone)
	listGigsByMonthUC := ucGig.NewListGigsByMonth(gigRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, c)
	userHandler := handlers.NewUserHandler(db)
	meHandler := handlers.NewMeHandler(db, cfg.Timezone)

	customerHandler := handlers.NewCustomerHandler(db)
	venueHandler := handlers.NewVenueHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	personnelHandler := handlers.NewPersonnelHandler(db)

	gigHandler := handlers.NewGigHandler(
		db,
		createGigUC,
		rescheduleGigUC,
		confirmGigUC,
		cancelGigUC,
		completeGigUC,
		listGigsByDateUC,
		listGigsByMonthUC,
	)

	invoiceHandler := handlers.NewInvoiceHandler(db)
	payoutHandler := handlers.NewPayoutHandler(db)
	fileHandler := handlers.NewFileHandler(db, uploader)
	lookupHandler := handlers.NewLookupHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, c, cfg.Timezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	squareHandler := handlers.NewSquareHandler(db, squareSync)
	settingsHandler := handlers.NewSettingsHandler(db)

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
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, c))
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SELF-SERVICE (any role)
			// ------------------------------
			secured.GET("/me/profile", meHandler.GetProfile)
			secured.PUT("/me/profile", meHandler.UpdateProfile)
			secured.GET("/me/gigs", meHandler.MyGigs)
			secured.POST("/me/gigs/:id/check-in", meHandler.CheckIn)
			secured.PATCH("/me/gigs/:id/check-out", meHandler.CheckOut)
			secured.GET("/me/payouts", meHandler.MyPayouts)
			secured.GET("/me/documents", meHandler.MyDocuments)

			// ------------------------------
			// BACK OFFICE (owner/manager)
			// ------------------------------
			backOffice := secured.Group("/")
			backOffice.Use(middleware.RequireBackOffice())
			{
				backOffice.GET("/dashboard", dashboardHandler.Get)

				backOffice.GET("/customers", customerHandler.List)
				backOffice.POST("/customers", customerHandler.Create)
				backOffice.GET("/customers/:id", customerHandler.Get)
				backOffice.PUT("/customers/:id", customerHandler.Update)
				backOffice.DELETE("/customers/:id", customerHandler.Delete)
				backOffice.POST("/customers/:id/contacts", customerHandler.LinkContact)
				backOffice.DELETE("/customers/:id/contacts/:contactId", customerHandler.UnlinkContact)

				backOffice.GET("/venues", venueHandler.List)
				backOffice.POST("/venues", venueHandler.Create)
				backOffice.GET("/venues/:id", venueHandler.Get)
				backOffice.PUT("/venues/:id", venueHandler.Update)
				backOffice.DELETE("/venues/:id", venueHandler.Delete)
				backOffice.POST("/venues/:id/contacts", venueHandler.LinkContact)
				backOffice.DELETE("/venues/:id/contacts/:contactId", venueHandler.UnlinkContact)

				backOffice.GET("/contacts", contactHandler.List)
				backOffice.POST("/contacts", contactHandler.Create)
				backOffice.GET("/contacts/:id", contactHandler.Get)
				backOffice.PUT("/contacts/:id", contactHandler.Update)
				backOffice.DELETE("/contacts/:id", contactHandler.Delete)

				backOffice.GET("/personnel", personnelHandler.List)
				backOffice.POST("/personnel", personnelHandler.Create)
				backOffice.GET("/personnel/:id", personnelHandler.Get)
				backOffice.PUT("/personnel/:id", personnelHandler.Update)
				backOffice.DELETE("/personnel/:id", personnelHandler.Delete)

				// ------------------------------
				// GIGS / CALENDAR
				// ------------------------------
				backOffice.POST("/gigs", gigHandler.Create)
				backOffice.GET("/gigs", gigHandler.ListByDate)
				backOffice.GET("/gigs/calendar", gigHandler.Calendar)
				backOffice.GET("/gigs/:id", gigHandler.Get)
				backOffice.PUT("/gigs/:id", gigHandler.Update)
				backOffice.DELETE("/gigs/:id", gigHandler.Delete)
				backOffice.PATCH("/gigs/:id/schedule", gigHandler.Schedule)
				backOffice.PATCH("/gigs/:id/confirm", gigHandler.Confirm)
				backOffice.PATCH("/gigs/:id/cancel", gigHandler.Cancel)
				backOffice.PATCH("/gigs/:id/complete", gigHandler.Complete)
				backOffice.POST("/gigs/:id/personnel", gigHandler.AssignPersonnel)
				backOffice.DELETE("/gigs/:id/personnel/:personnelId", gigHandler.UnassignPersonnel)

				backOffice.GET("/invoices", invoiceHandler.List)
				backOffice.POST("/invoices", invoiceHandler.Create)
				backOffice.GET("/invoices/:id", invoiceHandler.Get)
				backOffice.PUT("/invoices/:id", invoiceHandler.Update)
				backOffice.PATCH("/invoices/:id/status", invoiceHandler.SetStatus)
				backOffice.DELETE("/invoices/:id", invoiceHandler.Delete)

				backOffice.GET("/payouts", payoutHandler.List)
				backOffice.POST("/payouts", payoutHandler.Create)
				backOffice.PATCH("/payouts/:id/pay", payoutHandler.MarkPaid)
				backOffice.DELETE("/payouts/:id", payoutHandler.Delete)

				backOffice.GET("/files", fileHandler.List)
				backOffice.POST("/files", fileHandler.Upload)
				backOffice.GET("/files/:id", fileHandler.Get)
				backOffice.DELETE("/files/:id", fileHandler.Delete)

				backOffice.GET("/lookups/:table", lookupHandler.List)
				backOffice.POST("/lookups/:table", lookupHandler.Create)
				backOffice.DELETE("/lookups/:table/:id", lookupHandler.Delete)

				backOffice.GET("/audit-logs", auditLogsHandler.List)

				backOffice.POST("/integrations/square/sync", squareHandler.Sync)
				backOffice.GET("/integrations/square/customers", squareHandler.ListCustomers)
				backOffice.GET("/integrations/square/invoices", squareHandler.ListInvoices)
				backOffice.GET("/integrations/square/payments", squareHandler.ListPayments)
			}

			// ------------------------------
			// OWNER ONLY
			// ------------------------------
			ownerOnly := secured.Group("/")
			ownerOnly.Use(middleware.RequireOwner())
			{
				ownerOnly.GET("/users", userHandler.List)
				ownerOnly.POST("/users", userHandler.Create)
				ownerOnly.PUT("/users/:id", userHandler.Update)
				ownerOnly.DELETE("/users/:id", userHandler.Delete)

				ownerOnly.GET("/settings", settingsHandler.Get)
				ownerOnly.PUT("/settings", settingsHandler.Update)
			}
		}
	}
}
