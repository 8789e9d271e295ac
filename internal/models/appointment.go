package models

import "time"

type Appointment struct {
	ID uint `json:"id"`

	Date time.Time `json:"date"`

	PatientID      uint `json:"patient_id"`
	ProfessionalID uint `json:"professional_id"`
	SpecialtyID    uint `json:"specialty_id"`

	Patient      Patient      `json:"patient"`
	Professional Professional `json:"professional"`
	Specialty    Specialty    `json:"specialty"`

	Status             string `json:"status"`
	Notes              string `json:"notes,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`

	// Anotación derivada en el cliente, nunca enviada al backend.
	DisplayStatus string `json:"display_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DurationMin resuelve la duración de la cita desde su especialidad.
// Si el backend no adjuntó la especialidad se usa el respaldo entregado.
func (a *Appointment) DurationMin(fallback int) int {
	if a.Specialty.DurationMin > 0 {
		return a.Specialty.DurationMin
	}
	return fallback
}

func (a *Appointment) End(fallbackDurationMin int) time.Time {
	return a.Date.Add(time.Duration(a.DurationMin(fallbackDurationMin)) * time.Minute)
}
