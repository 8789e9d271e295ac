package appointment

import (
	"context"
	"time"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

// ListInput acota un fetch de citas por rango y, opcionalmente, por
// profesional. ProfessionalID = 0 significa "todos".
type ListInput struct {
	Start          time.Time
	End            time.Time
	ProfessionalID uint
}

// Update es el cuerpo de un PUT parcial sobre una cita. Sólo los campos
// no nil viajan al backend.
type Update struct {
	Date               *time.Time `json:"date,omitempty"`
	Status             *string    `json:"status,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

// Gateway es el puerto hacia la API clínica remota, dueña de todos los
// datos. Toda mutación exitosa se sigue de un refetch; acá no hay estado
// autoritativo.
type Gateway interface {
	// -------- Professionals --------
	ListProfessionals(ctx context.Context) ([]models.Professional, error)
	GetProfessional(ctx context.Context, id uint) (*models.Professional, error)
	UpdateSchedule(ctx context.Context, professionalID uint, schedule map[uint]models.WeeklySchedule) error
	AssignSpecialties(ctx context.Context, professionalID uint, specialtyIDs []uint) error
	GetTerms(ctx context.Context, professionalID, specialtyID uint) (string, error)
	UpdateTerms(ctx context.Context, professionalID, specialtyID uint, text string) error

	// -------- Patients --------
	ListPatients(ctx context.Context, query string) ([]models.Patient, error)
	CreatePatient(ctx context.Context, p *models.Patient) (*models.Patient, error)

	// -------- Specialties --------
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)

	// -------- Appointments --------
	ListAppointments(ctx context.Context, in ListInput) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id uint, update Update) (*models.Appointment, error)

	// -------- Availability --------
	// Lista de horarios calculada por el servidor; autoritativa cuando
	// está presente.
	AvailableHours(ctx context.Context, in AvailabilityInput) ([]TimeSlot, error)

	// -------- Center --------
	GetCenterConfig(ctx context.Context) (*models.CenterConfig, error)
	UpdateCenterConfig(ctx context.Context, cfg *models.CenterConfig) error
}
