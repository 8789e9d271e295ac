package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/agendasalud/clinic-agenda/internal/authz"
	"github.com/agendasalud/clinic-agenda/internal/cache"
	"github.com/agendasalud/clinic-agenda/internal/config"
	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/handlers"
	"github.com/agendasalud/clinic-agenda/internal/middleware"
	"github.com/agendasalud/clinic-agenda/internal/session"
	"github.com/agendasalud/clinic-agenda/internal/store"
	ucAppointment "github.com/agendasalud/clinic-agenda/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	gw domain.Gateway,
	rdb *redis.Client,
	logger *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	lists := cache.NewListCache(rdb, cfg.ListCacheTTL, logger)
	sessions := session.NewManager(rdb, logger)
	appointmentStore := store.NewAppointmentStore(gw, logger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(gw, logger)

	createAppointmentUC := ucAppointment.NewCreateAppointment(gw, appointmentStore, logger)
	rescheduleUC := ucAppointment.NewRescheduleAppointment(gw, availabilityUC, appointmentStore, logger)
	cancelUC := ucAppointment.NewCancelAppointment(gw, appointmentStore, logger)
	changeStatusUC := ucAppointment.NewChangeAppointmentStatus(gw, appointmentStore, logger)
	saveNotesUC := ucAppointment.NewSaveAppointmentNotes(gw, appointmentStore, logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(gw, lists, createAppointmentUC, availabilityUC, logger)
	appointmentHandler := handlers.NewAppointmentHandler(
		appointmentStore,
		createAppointmentUC,
		rescheduleUC,
		cancelUC,
		changeStatusUC,
		saveNotesUC,
	)
	patientHandler := handlers.NewPatientHandler(gw, lists, logger)
	professionalHandler := handlers.NewProfessionalHandler(gw, lists, logger)
	centerHandler := handlers.NewCenterHandler(gw)
	meHandler := handlers.NewMeHandler(sessions)

	api := r.Group("/api")
	{
		// ------------------------------
		// RESERVA PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", bookingHandler.ListSpecialties)
			publicAPI.GET("/professionals", bookingHandler.ListProfessionals)
			publicAPI.GET("/availability", bookingHandler.Availability)
			publicAPI.POST("/appointments", bookingHandler.CreateBooking)
		}

		// ------------------------------
		// PANEL PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/logout", meHandler.Logout)

			read := secured.Group("/")
			read.Use(middleware.RequireCapability(authz.CapReadAppointments))
			{
				read.GET("/appointments", appointmentHandler.ListByDate)
				read.GET("/appointments/month", appointmentHandler.ListByMonth)
				read.GET("/availability", bookingHandler.Availability)
			}

			manage := secured.Group("/")
			manage.Use(middleware.RequireCapability(authz.CapManageAppointments))
			{
				manage.POST("/appointments", appointmentHandler.Create)
				manage.PUT("/appointments/:id/reschedule", appointmentHandler.Reschedule)
				manage.PUT("/appointments/:id/cancel", appointmentHandler.Cancel)
				manage.PUT("/appointments/:id/status", appointmentHandler.ChangeStatus)
				manage.PUT("/appointments/:id/notes", appointmentHandler.SaveNotes)
			}

			patients := secured.Group("/")
			patients.Use(middleware.RequireCapability(authz.CapReadPatients))
			{
				patients.GET("/patients", patientHandler.List)
			}
			secured.POST(
				"/patients",
				middleware.RequireCapability(authz.CapCreatePatients),
				patientHandler.Create,
			)

			pros := secured.Group("/")
			pros.Use(middleware.RequireCapability(authz.CapManageSchedule))
			{
				pros.GET("/professionals", professionalHandler.List)
				pros.PUT("/professionals/:id/schedule", professionalHandler.UpdateSchedule)
			}

			specialties := secured.Group("/")
			specialties.Use(middleware.RequireCapability(authz.CapManageSpecialties))
			{
				specialties.PUT("/professionals/:id/specialties", professionalHandler.AssignSpecialties)
				specialties.GET("/professionals/:id/specialties/:specialtyId/terms", professionalHandler.GetTerms)
				specialties.PUT("/professionals/:id/specialties/:specialtyId/terms", professionalHandler.UpdateTerms)
			}

			center := secured.Group("/")
			center.Use(middleware.RequireCapability(authz.CapManageCenter))
			{
				center.GET("/center-config", centerHandler.Get)
				center.PUT("/center-config", centerHandler.Update)
			}
		}
	}
}
