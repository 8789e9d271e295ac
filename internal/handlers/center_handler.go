package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/httpresp"
	"github.com/agendasalud/clinic-agenda/internal/models"
)

type CenterHandler struct {
	gw domain.Gateway
}

func NewCenterHandler(gw domain.Gateway) *CenterHandler {
	return &CenterHandler{gw: gw}
}

func (h *CenterHandler) Get(c *gin.Context) {
	cfg, err := h.gw.GetCenterConfig(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, cfg)
}

func (h *CenterHandler) Update(c *gin.Context) {
	var cfg models.CenterConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := h.gw.UpdateCenterConfig(c.Request.Context(), &cfg); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, cfg)
}
