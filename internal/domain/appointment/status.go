package appointment

import "github.com/agendasalud/clinic-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusMissed    Status = "missed"
)

// Anotación derivada en el cliente para pendientes cuya hora ya llegó.
const DisplayToConfirm = "to_confirm"

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusMissed:
		return true
	}
	return false
}

// ===============================
// Validations
// ===============================

// CanCancel: cualquier estado puede cancelarse, salvo una cita ya
// cancelada. Cancelado es terminal.
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanChangeStatus cubre el menú rápido del staff: pendiente/ausente pueden
// moverse entre pending, confirmed y missed. Confirmado y cancelado son
// terminales para esta vía (reabrir exige reagendar o cancelar).
func CanChangeStatus(current, target Status) error {
	switch target {
	case StatusPending, StatusConfirmed, StatusMissed:
	default:
		return httperr.ErrBusiness("invalid_target_status")
	}

	if current == StatusCancelled || current == StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}

	return nil
}
