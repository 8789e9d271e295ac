package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agendasalud/clinic-agenda/internal/cache"
	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/httpresp"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/validators"
)

type ProfessionalHandler struct {
	gw     domain.Gateway
	lists  *cache.ListCache
	logger *zap.Logger
}

func NewProfessionalHandler(gw domain.Gateway, lists *cache.ListCache, logger *zap.Logger) *ProfessionalHandler {
	return &ProfessionalHandler{gw: gw, lists: lists, logger: logger}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateScheduleRequest struct {
	// id de especialidad → agenda semanal
	Schedule map[uint]models.WeeklySchedule `json:"schedule" binding:"required"`
}

type AssignSpecialtiesRequest struct {
	SpecialtyIDs []uint `json:"specialty_ids" binding:"required"`
}

type TermsRequest struct {
	Terms string `json:"terms"`
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST
// ======================================================

func (h *ProfessionalHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	key := cache.Key("professionals", map[string]string{"view": "admin"})

	var pros []models.Professional
	if !h.lists.Get(ctx, key, &pros) {
		var err error
		pros, err = h.gw.ListProfessionals(ctx)
		if err != nil {
			h.logger.Warn("professionals.list_failed", zap.Error(err))
			pros = []models.Professional{}
		} else {
			h.lists.Set(ctx, key, pros)
		}
	}

	httpresp.List(c, pros)
}

// ======================================================
// SCHEDULE
// ======================================================

func (h *ProfessionalHandler) UpdateSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	for _, week := range req.Schedule {
		if err := validators.ValidateWeeklySchedule(week); err != nil {
			writeError(c, err)
			return
		}
	}

	if err := h.gw.UpdateSchedule(c.Request.Context(), id, req.Schedule); err != nil {
		writeError(c, err)
		return
	}

	h.lists.Invalidate(c.Request.Context(), "professionals")

	c.JSON(200, gin.H{"status": "ok"})
}

// ======================================================
// SPECIALTIES + TERMS
// ======================================================

func (h *ProfessionalHandler) AssignSpecialties(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req AssignSpecialtiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.gw.AssignSpecialties(c.Request.Context(), id, req.SpecialtyIDs); err != nil {
		writeError(c, err)
		return
	}

	h.lists.Invalidate(c.Request.Context(), "professionals")

	c.JSON(200, gin.H{"status": "ok"})
}

func (h *ProfessionalHandler) GetTerms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	specialtyID, ok := pathID(c, "specialtyId")
	if !ok {
		return
	}

	terms, err := h.gw.GetTerms(c.Request.Context(), id, specialtyID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"terms": terms})
}

func (h *ProfessionalHandler) UpdateTerms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	specialtyID, ok := pathID(c, "specialtyId")
	if !ok {
		return
	}

	var req TermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.gw.UpdateTerms(c.Request.Context(), id, specialtyID, req.Terms); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
