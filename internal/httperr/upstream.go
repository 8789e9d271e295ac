package httperr

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// Mensaje genérico para fallas de red o respuestas ilegibles del backend.
const GenericUpstreamMessage = "No pudimos completar la operación. Intenta nuevamente."

// UpstreamError es un rechazo del backend clínico. El mensaje del servidor
// se muestra tal cual; nunca se reintenta automáticamente.
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("upstream status %d", e.StatusCode)
}

// UpstreamMessage extrae el mensaje del servidor, con respaldo genérico.
func UpstreamMessage(err error) string {
	var ue UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return GenericUpstreamMessage
}

// WriteUpstream traduce una falla del backend hacia el cliente: rechazos
// del servidor conservan su status y mensaje, el resto cae al genérico.
func WriteUpstream(c *gin.Context, err error) {
	var ue UpstreamError
	if errors.As(err, &ue) && ue.StatusCode >= 400 && ue.StatusCode < 500 {
		code := ue.Code
		if code == "" {
			code = "upstream_rejected"
		}
		Write(c, ue.StatusCode, code, ue.Error())
		return
	}

	Internal(c, "upstream_unavailable", GenericUpstreamMessage)
}
