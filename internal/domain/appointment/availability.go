package appointment

import "time"

// Paso fijo de generación de horarios candidatos.
const SlotStepMinutes = 15

type AvailabilityInput struct {
	ProfessionalID uint
	SpecialtyID    uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotStarts proyecta sólo las horas de inicio ("HH:MM").
func SlotStarts(slots []TimeSlot) []string {
	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	return starts
}
