package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agendasalud/clinic-agenda/internal/middleware"
	sessionpkg "github.com/agendasalud/clinic-agenda/internal/session"
)

type MeHandler struct {
	sessions *sessionpkg.Manager
}

func NewMeHandler(sessions *sessionpkg.Manager) *MeHandler {
	return &MeHandler{sessions: sessions}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	s, ok := sessionpkg.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    s.UserID,
			"name":  s.Name,
			"email": s.Email,
			"role":  s.Role,
		},
	})
}

// Logout es el teardown de la sesión: borra el blob de continuidad.
func (h *MeHandler) Logout(c *gin.Context) {
	tokenID, _ := c.Get(middleware.ContextTokenID)
	if id, ok := tokenID.(string); ok {
		h.sessions.Forget(c.Request.Context(), id)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
