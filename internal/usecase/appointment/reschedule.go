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
)

type RescheduleAppointment struct {
	gw     domain.Gateway
	avail  *GetAvailability
	store  *store.AppointmentStore
	logger *zap.Logger
}

func NewRescheduleAppointment(
	gw domain.Gateway,
	avail *GetAvailability,
	st *store.AppointmentStore,
	logger *zap.Logger,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		gw:     gw,
		avail:  avail,
		store:  st,
		logger: logger,
	}
}

// Execute reagenda una cita: valida la nueva hora contra horarios frescos
// de la nueva fecha y actualiza sólo el campo fecha.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	id uint,
	newDate string, // YYYY-MM-DD
	newTime string, // HH:mm
) (*models.Appointment, error) {

	ap, ok := uc.store.Get(id)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if domain.Status(ap.Status) == domain.StatusCancelled {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		newDate+" "+newTime,
		timezone.Clinic(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Horarios frescos antes de permitir el envío.
	slots, err := uc.avail.Execute(ctx, domain.AvailabilityInput{
		ProfessionalID: ap.ProfessionalID,
		SpecialtyID:    ap.SpecialtyID,
		Date:           start,
	})
	if err != nil {
		return nil, err
	}

	available := false
	for _, s := range slots {
		if s.Start == newTime {
			available = true
			break
		}
	}
	if !available {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	updated, err := uc.gw.UpdateAppointment(ctx, id, domain.Update{Date: &start})
	if err != nil {
		return nil, err
	}

	refreshStore(ctx, uc.store, uc.logger)

	return updated, nil
}
