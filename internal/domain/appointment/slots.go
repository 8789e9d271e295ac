package appointment

import (
	"time"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

// ComputeAvailableSlots calcula los horarios reservables de un día para un
// profesional, a partir de su agenda y las citas existentes. Es el cálculo
// de respaldo del cliente; la lista del backend manda cuando existe.
//
// Reglas:
//   - día deshabilitado (o agenda ausente) → sin horarios
//   - candidatos cada 15 minutos desde start hasta end − duración
//   - se excluye todo candidato que tope con el almuerzo o con una cita
//     no cancelada (intervalos semiabiertos: citas contiguas se permiten)
//   - si date es hoy, no se ofrecen horarios estrictamente antes de now
func ComputeAvailableSlots(
	day models.DaySchedule,
	durationMin int,
	appointments []models.Appointment,
	date time.Time,
	now time.Time,
) []TimeSlot {

	if !day.Enabled || day.Start == "" || day.End == "" || durationMin <= 0 {
		return []TimeSlot{}
	}

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(day.Start)
	dayEnd := parseHM(day.End)

	var lunchStart, lunchEnd time.Time
	if day.HasLunch() {
		lunchStart = parseHM(day.LunchStart)
		lunchEnd = parseHM(day.LunchEnd)
	}

	duration := time.Duration(durationMin) * time.Minute
	step := SlotStepMinutes * time.Minute
	today := timeEqualDay(date, now)

	slots := []TimeSlot{}

	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(step) {

		slotStart := cur
		slotEnd := cur.Add(duration)

		// sin reservas retroactivas
		if today && slotStart.Before(now) {
			continue
		}

		// almuerzo
		if day.HasLunch() && slotStart.Before(lunchEnd) && slotEnd.After(lunchStart) {
			continue
		}

		if hasConflict(slotStart, slotEnd, appointments, durationMin) {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: slotStart.Format("15:04"),
			End:   slotEnd.Format("15:04"),
		})
	}

	return slots
}

// hasConflict prueba el candidato contra cada cita no cancelada con
// intervalos semiabiertos [inicio, fin).
func hasConflict(
	slotStart, slotEnd time.Time,
	appointments []models.Appointment,
	fallbackDurationMin int,
) bool {

	for i := range appointments {
		ap := &appointments[i]

		if Status(ap.Status) == StatusCancelled {
			continue
		}

		apStart := ap.Date
		apEnd := ap.End(fallbackDurationMin)

		if slotStart.Before(apEnd) && slotEnd.After(apStart) {
			return true
		}
	}

	return false
}

func timeEqualDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
