package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saltain/randevux/internal/audit"
	"github.com/saltain/randevux/internal/config"
	"github.com/saltain/randevux/internal/handlers"
	infraRepo "github.com/saltain/randevux/internal/infra/repository"
	"github.com/saltain/randevux/internal/mail"
	"github.com/saltain/randevux/internal/middleware"
	"github.com/saltain/randevux/internal/sheets"
	ucBooking "github.com/saltain/randevux/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := mail.NewSMTPMailer(cfg.Mail)
	sheetsClient := sheets.NewClient(cfg.Google)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	listSlotsUC := ucBooking.NewListSlots(bookingRepo)

	sendCodeUC := ucBooking.NewSendVerificationCode(
		bookingRepo,
		mailer,
	)

	bookUC := ucBooking.NewBookAppointment(
		bookingRepo,
		mailer,
		sheetsClient,
		auditDispatcher,
	)

	confirmUC := ucBooking.NewConfirmAppointment(
		bookingRepo,
		auditDispatcher,
	)

	cancelUC := ucBooking.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	reminderUC := ucBooking.NewSendReminder(
		bookingRepo,
		mailer,
		auditDispatcher,
	)

	statsUC := ucBooking.NewDashboardStats(bookingRepo)

	syncSheetUC := ucBooking.NewSyncSheet(
		bookingRepo,
		sheetsClient,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	doctorHandler := handlers.NewDoctorHandler(db, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookingRepo,
		confirmUC,
		cancelUC,
		reminderUC,
		statsUC,
	)

	sheetsHandler := handlers.NewSheetsHandler(
		bookingRepo,
		sheetsClient,
		syncSheetUC,
		auditDispatcher,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		listSlotsUC,
		sendCodeUC,
		bookUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/doctors", publicHandler.ListDoctors)
			publicAPI.GET("/slots", publicHandler.ListSlots)
			publicAPI.POST("/verification-codes", publicHandler.SendVerificationCode)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
		}

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

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/doctors", doctorHandler.List)
			secured.POST("/me/doctors", doctorHandler.Create)
			secured.PATCH("/me/doctors/:id", doctorHandler.Update)
			secured.DELETE("/me/doctors/:id", doctorHandler.Delete)

			secured.GET("/me/working-hours", workingHoursHandler.List)
			secured.PUT("/me/working-hours", workingHoursHandler.Upsert)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/me/appointments/:id/reminder", appointmentHandler.SendReminder)

			secured.GET("/me/dashboard", appointmentHandler.DashboardStats)

			// ------------------------------
			// GOOGLE SHEETS
			// ------------------------------
			secured.GET("/me/sheets/settings", sheetsHandler.GetSettings)
			secured.PATCH("/me/sheets/settings", sheetsHandler.SaveSettings)
			secured.POST("/me/sheets/connect", sheetsHandler.Connect)
			secured.GET("/me/sheets/columns", sheetsHandler.ListColumns)
			secured.POST("/me/sheets/sync", sheetsHandler.Sync)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
