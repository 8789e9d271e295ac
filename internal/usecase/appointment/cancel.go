package appointment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/store"
)

type CancelAppointment struct {
	gw     domain.Gateway
	store  *store.AppointmentStore
	logger *zap.Logger
}

func NewCancelAppointment(
	gw domain.Gateway,
	st *store.AppointmentStore,
	logger *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		gw:     gw,
		store:  st,
		logger: logger,
	}
}

// Execute cancela con motivo obligatorio. La validación corre antes de
// cualquier llamada de red.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id uint,
	reason string,
) (*models.Appointment, error) {

	ap, ok := uc.store.Get(id)
	if !ok {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Cancel(ap, reason); err != nil {
		return nil, err
	}

	status := string(domain.StatusCancelled)
	trimmed := strings.TrimSpace(reason)

	updated, err := uc.gw.UpdateAppointment(ctx, id, domain.Update{
		Status:             &status,
		CancellationReason: &trimmed,
	})
	if err != nil {
		return nil, err
	}

	refreshStore(ctx, uc.store, uc.logger)

	return updated, nil
}
