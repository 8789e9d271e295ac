package models

import "time"

// Claves de día de semana usadas por la agenda semanal.
const (
	WeekdayMon = "mon"
	WeekdayTue = "tue"
	WeekdayWed = "wed"
	WeekdayThu = "thu"
	WeekdayFri = "fri"
	WeekdaySat = "sat"
	WeekdaySun = "sun"
)

var weekdayKeys = map[time.Weekday]string{
	time.Monday:    WeekdayMon,
	time.Tuesday:   WeekdayTue,
	time.Wednesday: WeekdayWed,
	time.Thursday:  WeekdayThu,
	time.Friday:    WeekdayFri,
	time.Saturday:  WeekdaySat,
	time.Sunday:    WeekdaySun,
}

func WeekdayKey(d time.Weekday) string {
	return weekdayKeys[d]
}

// DaySchedule es la configuración de atención de un día de la semana
// para un par profesional+especialidad. Horas en formato "HH:MM".
type DaySchedule struct {
	Enabled    bool   `json:"enabled"`
	Start      string `json:"start"`
	End        string `json:"end"`
	LunchStart string `json:"lunch_start,omitempty"`
	LunchEnd   string `json:"lunch_end,omitempty"`
}

func (d DaySchedule) HasLunch() bool {
	return d.LunchStart != "" && d.LunchEnd != ""
}

type WeeklySchedule map[string]DaySchedule

// Day entrega la configuración del día; un día ausente es un día sin atención.
func (w WeeklySchedule) Day(weekday time.Weekday) DaySchedule {
	if w == nil {
		return DaySchedule{}
	}
	return w[WeekdayKey(weekday)]
}

// DefaultWeeklySchedule es la agenda derivada para un profesional recién
// asignado a una especialidad: lunes a viernes 09:00–18:00 con almuerzo.
func DefaultWeeklySchedule() WeeklySchedule {
	week := WeeklySchedule{}
	for _, key := range []string{WeekdayMon, WeekdayTue, WeekdayWed, WeekdayThu, WeekdayFri} {
		week[key] = DaySchedule{
			Enabled:    true,
			Start:      "09:00",
			End:        "18:00",
			LunchStart: "13:00",
			LunchEnd:   "14:00",
		}
	}
	week[WeekdaySat] = DaySchedule{}
	week[WeekdaySun] = DaySchedule{}
	return week
}
