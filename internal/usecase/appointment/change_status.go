package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/store"
)

type ChangeAppointmentStatus struct {
	gw     domain.Gateway
	store  *store.AppointmentStore
	logger *zap.Logger
}

func NewChangeAppointmentStatus(
	gw domain.Gateway,
	st *store.AppointmentStore,
	logger *zap.Logger,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		gw:     gw,
		store:  st,
		logger: logger,
	}
}

// Execute cubre el menú rápido del staff (confirmar, marcar ausente,
// volver a pendiente). Confirmado y cancelado son terminales por esta vía.
func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	id uint,
	target domain.Status,
) (*models.Appointment, error) {

	ap, ok := uc.store.Get(id)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.ChangeStatus(ap, target); err != nil {
		return nil, err
	}

	status := string(target)
	updated, err := uc.gw.UpdateAppointment(ctx, id, domain.Update{Status: &status})
	if err != nil {
		return nil, err
	}

	refreshStore(ctx, uc.store, uc.logger)

	return updated, nil
}
