package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/store"
	"github.com/agendasalud/clinic-agenda/internal/timezone"
	"github.com/agendasalud/clinic-agenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// Referencia a paciente existente, o datos de uno nuevo (no ambos).
	PatientID  uint
	NewPatient *models.Patient

	ProfessionalID uint
	SpecialtyID    uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	Notes string

	// El canal decide el estado inicial: la reserva pública entra
	// "pending", la del staff "confirmed". Nunca se asume acá.
	InitialStatus domain.Status
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment es la operación compuesta reservar: si vienen datos
// de paciente nuevo, primero se crea el paciente (validación local antes
// de cualquier llamada de red) y después la cita.
type CreateAppointment struct {
	gw     domain.Gateway
	store  *store.AppointmentStore
	logger *zap.Logger
}

func NewCreateAppointment(
	gw domain.Gateway,
	st *store.AppointmentStore,
	logger *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		gw:     gw,
		store:  st,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.InitialStatus != domain.StatusPending && in.InitialStatus != domain.StatusConfirmed {
		return nil, httperr.ErrBusiness("invalid_initial_status")
	}

	if in.ProfessionalID == 0 || in.SpecialtyID == 0 {
		return nil, httperr.ErrBusiness("missing_professional_or_specialty")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Clinic(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Paciente: existente o creado primero
	// --------------------------------------------------
	patientID := in.PatientID

	if in.NewPatient != nil {
		if err := validators.ValidatePatient(in.NewPatient, timezone.Now()); err != nil {
			return nil, err
		}

		created, err := uc.gw.CreatePatient(ctx, in.NewPatient)
		if err != nil {
			return nil, err
		}
		patientID = created.ID
	}

	if patientID == 0 {
		return nil, httperr.ErrBusiness("missing_patient")
	}

	// --------------------------------------------------
	// Cita
	// --------------------------------------------------
	ap := &models.Appointment{
		Date:           start,
		PatientID:      patientID,
		ProfessionalID: in.ProfessionalID,
		SpecialtyID:    in.SpecialtyID,
		Status:         string(in.InitialStatus),
		Notes:          in.Notes,
	}

	created, err := uc.gw.CreateAppointment(ctx, ap)
	if err != nil {
		return nil, err
	}

	refreshStore(ctx, uc.store, uc.logger)

	return created, nil
}
