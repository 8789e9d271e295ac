package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/store"
)

type SaveAppointmentNotes struct {
	gw     domain.Gateway
	store  *store.AppointmentStore
	logger *zap.Logger
}

func NewSaveAppointmentNotes(
	gw domain.Gateway,
	st *store.AppointmentStore,
	logger *zap.Logger,
) *SaveAppointmentNotes {
	return &SaveAppointmentNotes{
		gw:     gw,
		store:  st,
		logger: logger,
	}
}

// Execute guarda texto libre; vacío es válido.
func (uc *SaveAppointmentNotes) Execute(
	ctx context.Context,
	id uint,
	notes string,
) (*models.Appointment, error) {

	updated, err := uc.gw.UpdateAppointment(ctx, id, domain.Update{Notes: &notes})
	if err != nil {
		return nil, err
	}

	refreshStore(ctx, uc.store, uc.logger)

	return updated, nil
}
