package validators

import (
	"strings"
	"time"

	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
)

// ValidatePatient corre las validaciones de cliente antes de cualquier
// llamada de red: campos obligatorios, RUT, email, teléfono y fecha de
// nacimiento no futura.
func ValidatePatient(p *models.Patient, now time.Time) error {
	if strings.TrimSpace(p.Name) == "" {
		return httperr.ErrBusiness("missing_name")
	}
	if strings.TrimSpace(p.Rut) == "" {
		return httperr.ErrBusiness("missing_rut")
	}
	if !IsValidRut(p.Rut) {
		return httperr.ErrBusiness("invalid_rut")
	}
	if strings.TrimSpace(p.Email) == "" {
		return httperr.ErrBusiness("missing_email")
	}
	if !IsValidEmail(p.Email) {
		return httperr.ErrBusiness("invalid_email")
	}
	if strings.TrimSpace(p.Phone) == "" {
		return httperr.ErrBusiness("missing_phone")
	}
	if !IsValidPhone(p.Phone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	if strings.TrimSpace(p.BirthDate) == "" {
		return httperr.ErrBusiness("missing_birth_date")
	}

	birth, err := time.ParseInLocation("2006-01-02", p.BirthDate, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_birth_date")
	}
	if birth.After(now) {
		return httperr.ErrBusiness("birth_date_in_future")
	}

	return nil
}
