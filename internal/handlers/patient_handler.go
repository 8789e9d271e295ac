package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agendasalud/clinic-agenda/internal/cache"
	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/httpresp"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/timezone"
	"github.com/agendasalud/clinic-agenda/internal/validators"
)

type PatientHandler struct {
	gw     domain.Gateway
	lists  *cache.ListCache
	logger *zap.Logger
}

func NewPatientHandler(gw domain.Gateway, lists *cache.ListCache, logger *zap.Logger) *PatientHandler {
	return &PatientHandler{gw: gw, lists: lists, logger: logger}
}

// ======================================================
// LIST (directorio con búsqueda)
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	key := cache.Key("patients", map[string]string{"query": query})

	var patients []models.Patient
	if !h.lists.Get(ctx, key, &patients) {
		var err error
		patients, err = h.gw.ListPatients(ctx, query)
		if err != nil {
			h.logger.Warn("patients.list_failed", zap.Error(err))
			patients = []models.Patient{}
		} else {
			h.lists.Set(ctx, key, patients)
		}
	}

	httpresp.List(c, patients)
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	// validación local antes de cualquier llamada de red
	if err := validators.ValidatePatient(&p, timezone.Now()); err != nil {
		writeError(c, err)
		return
	}

	created, err := h.gw.CreatePatient(c.Request.Context(), &p)
	if err != nil {
		writeError(c, err)
		return
	}

	h.lists.Invalidate(c.Request.Context(), "patients")

	httpresp.Created(c, created)
}
