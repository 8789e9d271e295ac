package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/timezone"
)

type GetAvailability struct {
	gw     domain.Gateway
	logger *zap.Logger
}

func NewGetAvailability(gw domain.Gateway, logger *zap.Logger) *GetAvailability {
	return &GetAvailability{gw: gw, logger: logger}
}

// Execute entrega los horarios reservables para (profesional,
// especialidad, fecha). La lista calculada por el servidor es
// autoritativa; si el endpoint falla, se cae al cálculo local sobre la
// agenda del profesional y las citas del día.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	slots, err := uc.gw.AvailableHours(ctx, in)
	if err == nil {
		if slots == nil {
			slots = []domain.TimeSlot{}
		}
		return slots, nil
	}

	uc.logger.Warn("availability.server_slots_unavailable, falling back",
		zap.Uint("professional_id", in.ProfessionalID),
		zap.Uint("specialty_id", in.SpecialtyID),
		zap.Error(err),
	)

	return uc.computeLocally(ctx, in)
}

func (uc *GetAvailability) computeLocally(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	pro, err := uc.gw.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	// Agenda no configurada para la especialidad → día sin atención,
	// no es un error.
	week, ok := pro.ScheduleFor(in.SpecialtyID)
	if !ok {
		return []domain.TimeSlot{}, nil
	}

	durationMin := 0
	for _, sp := range pro.Specialties {
		if sp.ID == in.SpecialtyID {
			durationMin = sp.DurationMin
			break
		}
	}
	if durationMin <= 0 {
		return []domain.TimeSlot{}, nil
	}

	dayStart, dayEnd := timezone.DayBounds(in.Date)
	aps, err := uc.gw.ListAppointments(ctx, domain.ListInput{
		Start:          dayStart,
		End:            dayEnd,
		ProfessionalID: in.ProfessionalID,
	})
	if err != nil {
		return nil, err
	}

	day := week.Day(in.Date.Weekday())

	return domain.ComputeAvailableSlots(day, durationMin, aps, in.Date, timezone.Now()), nil
}
