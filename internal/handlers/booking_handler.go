package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agendasalud/clinic-agenda/internal/cache"
	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/httpresp"
	"github.com/agendasalud/clinic-agenda/internal/models"
	ucAppointment "github.com/agendasalud/clinic-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER — FLUJO PÚBLICO DE RESERVA
// ======================================================

type BookingHandler struct {
	gw       domain.Gateway
	lists    *cache.ListCache
	createUC *ucAppointment.CreateAppointment
	availUC  *ucAppointment.GetAvailability
	logger   *zap.Logger
}

func NewBookingHandler(
	gw domain.Gateway,
	lists *cache.ListCache,
	createUC *ucAppointment.CreateAppointment,
	availUC *ucAppointment.GetAvailability,
	logger *zap.Logger,
) *BookingHandler {
	return &BookingHandler{
		gw:       gw,
		lists:    lists,
		createUC: createUC,
		availUC:  availUC,
		logger:   logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingPatient struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Rut       string `json:"rut" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Address   string `json:"address"`
}

type CreateBookingRequest struct {
	Patient        BookingPatient `json:"patient" binding:"required"`
	ProfessionalID uint           `json:"professional_id" binding:"required"`
	SpecialtyID    uint           `json:"specialty_id" binding:"required"`
	Date           string         `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string         `json:"time" binding:"required"` // HH:mm
	Notes          string         `json:"notes"`
	TermsAccepted  bool           `json:"terms_accepted"`
}

// ======================================================
// SPECIALTIES
// ======================================================

func (h *BookingHandler) ListSpecialties(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.Key("services", nil)

	var specialties []models.Specialty
	if !h.lists.Get(ctx, key, &specialties) {
		var err error
		specialties, err = h.gw.ListSpecialties(ctx)
		if err != nil {
			// los listados de lectura degradan a vacío, nunca bloquean
			h.logger.Warn("booking.list_specialties_failed", zap.Error(err))
			specialties = []models.Specialty{}
		} else {
			h.lists.Set(ctx, key, specialties)
		}
	}

	httpresp.List(c, specialties)
}

// ======================================================
// PROFESSIONALS
// ======================================================

func (h *BookingHandler) ListProfessionals(c *gin.Context) {
	ctx := c.Request.Context()

	specialtyIDStr := c.Query("specialty_id")
	key := cache.Key("professionals", map[string]string{"specialty_id": specialtyIDStr})

	var pros []models.Professional
	if !h.lists.Get(ctx, key, &pros) {
		all, err := h.gw.ListProfessionals(ctx)
		if err != nil {
			h.logger.Warn("booking.list_professionals_failed", zap.Error(err))
			all = []models.Professional{}
		}

		pros = filterBookable(all, specialtyIDStr)
		if err == nil {
			h.lists.Set(ctx, key, pros)
		}
	}

	httpresp.List(c, pros)
}

// filterBookable descarta admins (nunca reservables) y, si viene
// specialty_id, exige que el profesional la atienda.
func filterBookable(pros []models.Professional, specialtyIDStr string) []models.Professional {
	var specialtyID uint
	if specialtyIDStr != "" {
		if v, err := strconv.ParseUint(specialtyIDStr, 10, 64); err == nil {
			specialtyID = uint(v)
		}
	}

	out := []models.Professional{}
	for _, p := range pros {
		if p.Role == models.RoleAdmin {
			continue
		}

		if specialtyID != 0 {
			attends := false
			for _, sp := range p.Specialties {
				if sp.ID == specialtyID {
					attends = true
					break
				}
			}
			if !attends {
				continue
			}
		}

		out = append(out, p)
	}
	return out
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	professionalID, err1 := strconv.ParseUint(c.Query("professional_id"), 10, 64)
	specialtyID, err2 := strconv.ParseUint(c.Query("specialty_id"), 10, 64)
	dateStr := c.Query("date")

	if err1 != nil || err2 != nil || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Profesional, especialidad y fecha son obligatorios.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: uint(professionalID),
		SpecialtyID:    uint(specialtyID),
		Date:           date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE BOOKING (paciente + cita)
// ======================================================

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.checkTerms(c, req.SpecialtyID, req.TermsAccepted); err != nil {
		writeError(c, err)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		NewPatient: &models.Patient{
			Name:      req.Patient.Name,
			Email:     req.Patient.Email,
			Phone:     req.Patient.Phone,
			Rut:       req.Patient.Rut,
			BirthDate: req.Patient.BirthDate,
			Address:   req.Patient.Address,
		},
		ProfessionalID: req.ProfessionalID,
		SpecialtyID:    req.SpecialtyID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		// canal público: queda pendiente de confirmación
		InitialStatus: domain.StatusPending,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *BookingHandler) checkTerms(c *gin.Context, specialtyID uint, accepted bool) error {
	specialties, err := h.gw.ListSpecialties(c.Request.Context())
	if err != nil {
		// si el listado falla no bloqueamos la reserva por los términos
		h.logger.Warn("booking.terms_check_skipped", zap.Error(err))
		return nil
	}

	for _, sp := range specialties {
		if sp.ID == specialtyID && sp.HasTerms && !accepted {
			return httperr.ErrBusiness("terms_not_accepted")
		}
	}
	return nil
}
