package models

import "time"

// Roles del personal de la clínica.
const (
	RoleAdmin   = "admin"
	RoleMember  = "member"
	RoleLimited = "limited"
)

type Professional struct {
	ID uint `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	// Un admin nunca lleva especialidades ni agenda de atención.
	Specialties []Specialty `json:"specialties"`

	// Agenda semanal por especialidad (id de especialidad → semana).
	Schedule map[uint]WeeklySchedule `json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleFor entrega la agenda semanal configurada para una especialidad.
// Si no existe, la especialidad se trata como sin disponibilidad.
func (p *Professional) ScheduleFor(specialtyID uint) (WeeklySchedule, bool) {
	if p == nil || p.Schedule == nil {
		return nil, false
	}
	ws, ok := p.Schedule[specialtyID]
	return ws, ok
}
