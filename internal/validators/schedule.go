package validators

import (
	"time"

	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
)

func parseHM(hm string) (time.Time, bool) {
	t, err := time.Parse("15:04", hm)
	return t, err == nil
}

// ValidateDaySchedule aplica las invariantes de un día de agenda:
// deshabilitado → sin horas; habilitado → start < end y, si hay almuerzo,
// start <= lunch_start < lunch_end <= end.
func ValidateDaySchedule(d models.DaySchedule) error {
	if !d.Enabled {
		if d.Start != "" || d.End != "" || d.LunchStart != "" || d.LunchEnd != "" {
			return httperr.ErrBusiness("disabled_day_with_hours")
		}
		return nil
	}

	start, ok := parseHM(d.Start)
	if !ok {
		return httperr.ErrBusiness("invalid_start_time")
	}
	end, ok := parseHM(d.End)
	if !ok {
		return httperr.ErrBusiness("invalid_end_time")
	}
	if !start.Before(end) {
		return httperr.ErrBusiness("start_after_end")
	}

	// Almuerzo: ambos o ninguno.
	if (d.LunchStart == "") != (d.LunchEnd == "") {
		return httperr.ErrBusiness("incomplete_lunch_window")
	}

	if d.HasLunch() {
		lunchStart, ok := parseHM(d.LunchStart)
		if !ok {
			return httperr.ErrBusiness("invalid_lunch_start")
		}
		lunchEnd, ok := parseHM(d.LunchEnd)
		if !ok {
			return httperr.ErrBusiness("invalid_lunch_end")
		}

		if lunchStart.Before(start) || !lunchStart.Before(lunchEnd) || lunchEnd.After(end) {
			return httperr.ErrBusiness("lunch_outside_working_hours")
		}
	}

	return nil
}

func ValidateWeeklySchedule(w models.WeeklySchedule) error {
	for _, day := range []string{
		models.WeekdayMon, models.WeekdayTue, models.WeekdayWed,
		models.WeekdayThu, models.WeekdayFri, models.WeekdaySat, models.WeekdaySun,
	} {
		if err := ValidateDaySchedule(w[day]); err != nil {
			return err
		}
	}
	return nil
}
