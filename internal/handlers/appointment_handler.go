package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/httpresp"
	"github.com/agendasalud/clinic-agenda/internal/store"
	"github.com/agendasalud/clinic-agenda/internal/timezone"
	ucAppointment "github.com/agendasalud/clinic-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER — AGENDA PRIVADA DEL STAFF
// ======================================================

type AppointmentHandler struct {
	store        *store.AppointmentStore
	createUC     *ucAppointment.CreateAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	cancelUC     *ucAppointment.CancelAppointment
	statusUC     *ucAppointment.ChangeAppointmentStatus
	notesUC      *ucAppointment.SaveAppointmentNotes
}

func NewAppointmentHandler(
	st *store.AppointmentStore,
	createUC *ucAppointment.CreateAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	statusUC *ucAppointment.ChangeAppointmentStatus,
	notesUC *ucAppointment.SaveAppointmentNotes,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:        st,
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		cancelUC:     cancelUC,
		statusUC:     statusUC,
		notesUC:      notesUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StaffCreateAppointmentRequest struct {
	PatientID      uint   `json:"patient_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	SpecialtyID    uint   `json:"specialty_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type NotesRequest struct {
	Notes string `json:"notes"`
}

// applyFilters sincroniza el store con los filtros del request. El filtro
// de especialidad es local; el de profesional refetchea.
func (h *AppointmentHandler) applyFilters(c *gin.Context) {
	var specialtyIDs []uint
	if raw := c.Query("specialty_ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err == nil {
				specialtyIDs = append(specialtyIDs, uint(v))
			}
		}
	}
	h.store.SetSpecialtyFilter(specialtyIDs)
}

func professionalFilter(c *gin.Context) uint {
	raw := c.Query("professional_id")
	if raw == "" || raw == "all" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	h.applyFilters(c)

	start, end := timezone.DayBounds(date)
	if err := h.store.SetProfessionalFilter(c.Request.Context(), professionalFilter(c)); err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.SetRange(c.Request.Context(), start, end); err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, h.store.AppointmentsForDay(date))
}

// ======================================================
// LIST BY MONTH (grilla de calendario + conteos por día)
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	h.applyFilters(c)

	start, end := timezone.MonthBounds(year, time.Month(month), timezone.Clinic())
	if err := h.store.SetProfessionalFilter(c.Request.Context(), professionalFilter(c)); err != nil {
		writeError(c, err)
		return
	}
	if err := h.store.SetRange(c.Request.Context(), start, end); err != nil {
		writeError(c, err)
		return
	}

	counts := map[string]int{}
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		if n := h.store.CountForDay(day); n > 0 {
			counts[day.Format("2006-01-02")] = n
		}
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"appointments": h.store.Snapshot(),
		"day_counts":   counts,
	})
}

// ======================================================
// CREATE (staff → confirmada de entrada)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req StaffCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		SpecialtyID:    req.SpecialtyID,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
		InitialStatus:  domain.StatusConfirmed,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// MUTACIONES SOBRE UNA CITA
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), id, req.Date, req.Time)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), id, domain.Status(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SaveNotes(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	ap, err := h.notesUC.Execute(c.Request.Context(), id, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
