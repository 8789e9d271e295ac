package appointment

import (
	"strings"
	"time"

	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return httperr.ErrBusiness("missing_cancellation_reason")
	}

	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	return nil
}

func ChangeStatus(ap *models.Appointment, target Status) error {
	if err := CanChangeStatus(Status(ap.Status), target); err != nil {
		return err
	}

	ap.Status = string(target)
	return nil
}

// Annotate recalcula displayStatus: una cita pendiente cuya hora de inicio
// está en la hora actual o antes pasa a "to_confirm". Se recalcula en cada
// fetch y jamás viaja al backend.
func Annotate(ap *models.Appointment, now time.Time) {
	ap.DisplayStatus = ap.Status

	if Status(ap.Status) != StatusPending {
		return
	}

	hourEnd := time.Date(
		now.Year(), now.Month(), now.Day(),
		now.Hour(), 0, 0, 0,
		now.Location(),
	).Add(time.Hour)

	if ap.Date.Before(hourEnd) {
		ap.DisplayStatus = DisplayToConfirm
	}
}
