package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendasalud/clinic-agenda/internal/httperr"
)

// Mensajes en español por código de negocio. Los errores de validación
// nunca llegan a la red; se devuelven acá mismo.
var businessMessages = map[string]string{
	"missing_name":                      "El nombre es obligatorio.",
	"missing_rut":                       "El RUT es obligatorio.",
	"invalid_rut":                       "El RUT no es válido.",
	"missing_email":                     "El email es obligatorio.",
	"invalid_email":                     "El email no es válido.",
	"missing_phone":                     "El teléfono es obligatorio.",
	"invalid_phone":                     "El teléfono no es válido.",
	"missing_birth_date":                "La fecha de nacimiento es obligatoria.",
	"invalid_birth_date":                "La fecha de nacimiento no es válida.",
	"birth_date_in_future":              "La fecha de nacimiento no puede ser futura.",
	"invalid_date_or_time":              "Fecha u hora inválida.",
	"invalid_date":                      "Fecha inválida.",
	"missing_patient":                   "Debes indicar un paciente.",
	"missing_professional_or_specialty": "Debes indicar profesional y especialidad.",
	"invalid_initial_status":            "Estado inicial inválido.",
	"missing_cancellation_reason":       "El motivo de cancelación es obligatorio.",
	"invalid_state":                     "La cita no permite esta acción.",
	"invalid_target_status":             "Estado de destino inválido.",
	"appointment_not_found":             "Cita no encontrada.",
	"slot_unavailable":                  "El horario ya no está disponible.",
	"terms_not_accepted":                "Debes aceptar los términos de la especialidad.",
	"disabled_day_with_hours":           "Un día deshabilitado no puede tener horas.",
	"invalid_start_time":                "Hora de inicio inválida.",
	"invalid_end_time":                  "Hora de término inválida.",
	"start_after_end":                   "La hora de inicio debe ser anterior al término.",
	"incomplete_lunch_window":           "El almuerzo requiere inicio y término.",
	"invalid_lunch_start":               "Hora de inicio de almuerzo inválida.",
	"invalid_lunch_end":                 "Hora de término de almuerzo inválida.",
	"lunch_outside_working_hours":       "El almuerzo debe quedar dentro del horario.",
}

// writeError clasifica la falla: error de negocio local → 400 con su
// mensaje; rechazo del backend → status y mensaje del servidor; lo demás
// → genérico.
func writeError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		message := businessMessages[code]
		if message == "" {
			message = "Solicitud inválida."
		}

		if code == "appointment_not_found" {
			httperr.NotFound(c, code, message)
			return
		}

		httperr.BadRequest(c, code, message)
		return
	}

	httperr.WriteUpstream(c, err)
}
