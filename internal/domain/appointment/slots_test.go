package appointment

import (
	"testing"
	"time"

	"github.com/agendasalud/clinic-agenda/internal/models"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func day(loc *time.Location) time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, loc) // martes
}

func at(base time.Time, hour, min int) time.Time {
	return time.Date(base.Year(), base.Month(), base.Day(), hour, min, 0, 0, base.Location())
}

func morning() models.DaySchedule {
	return models.DaySchedule{Enabled: true, Start: "09:00", End: "12:00"}
}

func appointmentAt(base time.Time, hour, min, durationMin int, status Status) models.Appointment {
	return models.Appointment{
		Date:      at(base, hour, min),
		Status:    string(status),
		Specialty: models.Specialty{ID: 1, DurationMin: durationMin},
	}
}

func TestComputeAvailableSlots_DisabledDayIsEmpty(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	slots := ComputeAvailableSlots(models.DaySchedule{}, 30, nil, d, at(d, 8, 0))
	if len(slots) != 0 {
		t.Fatalf("disabled day should have no slots, got %d", len(slots))
	}

	// con citas existentes sigue vacío
	aps := []models.Appointment{appointmentAt(d, 10, 0, 30, StatusConfirmed)}
	slots = ComputeAvailableSlots(models.DaySchedule{}, 30, aps, d, at(d, 8, 0))
	if len(slots) != 0 {
		t.Fatalf("disabled day with appointments should have no slots, got %d", len(slots))
	}
}

func TestComputeAvailableSlots_FullMorning(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	slots := ComputeAvailableSlots(morning(), 30, nil, d, at(d, 8, 0))

	// floor((180-30)/15)+1 = 11 candidatos: 09:00 .. 11:30
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}
	if slots[0].Start != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0].Start)
	}
	if last := slots[len(slots)-1]; last.Start != "11:30" || last.End != "12:00" {
		t.Fatalf("expected last slot 11:30-12:00, got %s-%s", last.Start, last.End)
	}

	// orden ascendente, sin duplicados
	for i := 1; i < len(slots); i++ {
		if slots[i].Start <= slots[i-1].Start {
			t.Fatalf("slots out of order at %d: %s then %s", i, slots[i-1].Start, slots[i].Start)
		}
	}
}

func TestComputeAvailableSlots_ExcludesOverlapsAllowsAbutting(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	aps := []models.Appointment{appointmentAt(d, 10, 0, 30, StatusConfirmed)}
	slots := ComputeAvailableSlots(morning(), 30, aps, d, at(d, 8, 0))

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start] = true
	}

	// intervalos semiabiertos: 09:30 termina 10:00 (contiguo, permitido) y
	// 10:30 parte cuando termina la cita
	for _, want := range []string{"09:00", "09:15", "09:30", "10:30", "10:45"} {
		if !starts[want] {
			t.Fatalf("expected slot %s to be available", want)
		}
	}
	for _, banned := range []string{"09:45", "10:00", "10:15"} {
		if starts[banned] {
			t.Fatalf("slot %s overlaps the 10:00 appointment", banned)
		}
	}
}

func TestComputeAvailableSlots_CancelledAppointmentDoesNotBlock(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	aps := []models.Appointment{appointmentAt(d, 10, 0, 30, StatusCancelled)}
	slots := ComputeAvailableSlots(morning(), 30, aps, d, at(d, 8, 0))

	if len(slots) != 11 {
		t.Fatalf("cancelled appointment should not block slots, got %d of 11", len(slots))
	}
}

func TestComputeAvailableSlots_LunchWindowExcluded(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	sched := models.DaySchedule{
		Enabled:    true,
		Start:      "09:00",
		End:        "15:00",
		LunchStart: "13:00",
		LunchEnd:   "14:00",
	}

	slots := ComputeAvailableSlots(sched, 30, nil, d, at(d, 8, 0))

	for _, s := range slots {
		if s.Start >= "12:45" && s.Start < "14:00" {
			t.Fatalf("slot %s collides with lunch", s.Start)
		}
	}

	starts := map[string]bool{}
	for _, s := range slots {
		starts[s.Start] = true
	}
	// contiguo al almuerzo por ambos lados
	if !starts["12:30"] || !starts["14:00"] {
		t.Fatalf("slots abutting lunch should be available, got %v", SlotStarts(slots))
	}
}

func TestComputeAvailableSlots_NoRetroactiveSlotsToday(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	now := at(d, 10, 10)
	slots := ComputeAvailableSlots(morning(), 30, nil, d, now)

	if len(slots) == 0 {
		t.Fatal("expected afternoon slots")
	}
	if slots[0].Start != "10:15" {
		t.Fatalf("expected first slot 10:15, got %s", slots[0].Start)
	}

	// otro día: now no recorta
	tomorrow := d.AddDate(0, 0, 1)
	slots = ComputeAvailableSlots(morning(), 30, nil, tomorrow, now)
	if slots[0].Start != "09:00" {
		t.Fatalf("future day should start at 09:00, got %s", slots[0].Start)
	}
}

func TestComputeAvailableSlots_DurationNotDividingWindow(t *testing.T) {
	loc := mustLoc(t)
	d := day(loc)

	sched := models.DaySchedule{Enabled: true, Start: "09:00", End: "10:10"}
	slots := ComputeAvailableSlots(sched, 45, nil, d, at(d, 8, 0))

	// último candidato cuyo término <= 10:10 es 09:15 (09:15+45 = 10:00)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d (%v)", len(slots), SlotStarts(slots))
	}
	if slots[len(slots)-1].Start != "09:15" {
		t.Fatalf("expected last slot 09:15, got %s", slots[len(slots)-1].Start)
	}
}
