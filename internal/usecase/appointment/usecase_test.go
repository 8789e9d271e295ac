package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/httperr"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/store"
	"github.com/agendasalud/clinic-agenda/internal/timezone"
)

// fakeGateway implementa el puerto con funciones intercambiables y
// contadores de llamadas de mutación.
type fakeGateway struct {
	domain.Gateway

	listFn         func(ctx context.Context, in domain.ListInput) ([]models.Appointment, error)
	createPatient  func(ctx context.Context, p *models.Patient) (*models.Patient, error)
	createFn       func(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)
	updateFn       func(ctx context.Context, id uint, update domain.Update) (*models.Appointment, error)
	availableFn    func(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error)
	professionalFn func(ctx context.Context, id uint) (*models.Professional, error)

	patientCalls int
	createCalls  int
	updateCalls  int
}

func (f *fakeGateway) ListAppointments(ctx context.Context, in domain.ListInput) ([]models.Appointment, error) {
	if f.listFn == nil {
		return []models.Appointment{}, nil
	}
	return f.listFn(ctx, in)
}

func (f *fakeGateway) CreatePatient(ctx context.Context, p *models.Patient) (*models.Patient, error) {
	f.patientCalls++
	return f.createPatient(ctx, p)
}

func (f *fakeGateway) CreateAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	f.createCalls++
	return f.createFn(ctx, ap)
}

func (f *fakeGateway) UpdateAppointment(ctx context.Context, id uint, update domain.Update) (*models.Appointment, error) {
	f.updateCalls++
	return f.updateFn(ctx, id, update)
}

func (f *fakeGateway) AvailableHours(ctx context.Context, in domain.AvailabilityInput) ([]domain.TimeSlot, error) {
	return f.availableFn(ctx, in)
}

func (f *fakeGateway) GetProfessional(ctx context.Context, id uint) (*models.Professional, error) {
	return f.professionalFn(ctx, id)
}

func assertBusinessCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected business error %q, got nil", code)
	}
	got, ok := httperr.BusinessCode(err)
	if !ok {
		t.Fatalf("expected business error %q, got %v", code, err)
	}
	if got != code {
		t.Fatalf("expected code %q, got %q", code, got)
	}
}

func storeWith(t *testing.T, gw *fakeGateway, aps []models.Appointment) *store.AppointmentStore {
	t.Helper()
	gw.listFn = func(context.Context, domain.ListInput) ([]models.Appointment, error) {
		return aps, nil
	}
	st := store.NewAppointmentStore(gw, zap.NewNop())
	if err := st.Refresh(context.Background()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return st
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment_NewPatientIsCreatedFirst(t *testing.T) {
	gw := &fakeGateway{}

	var createdPatient models.Patient
	gw.createPatient = func(_ context.Context, p *models.Patient) (*models.Patient, error) {
		createdPatient = *p
		out := *p
		out.ID = 42
		return &out, nil
	}

	var sent models.Appointment
	gw.createFn = func(_ context.Context, ap *models.Appointment) (*models.Appointment, error) {
		if gw.patientCalls == 0 {
			t.Fatal("appointment created before patient")
		}
		sent = *ap
		out := *ap
		out.ID = 7
		return &out, nil
	}

	uc := NewCreateAppointment(gw, nil, zap.NewNop())

	created, err := uc.Execute(context.Background(), CreateAppointmentInput{
		NewPatient: &models.Patient{
			Name:      "María Pérez",
			Rut:       "12345678-5",
			Email:     "maria@example.com",
			Phone:     "+56 9 1234 5678",
			BirthDate: "1990-04-12",
		},
		ProfessionalID: 3,
		SpecialtyID:    2,
		Date:           "2027-03-09",
		Time:           "10:30",
		InitialStatus:  domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if created.ID != 7 {
		t.Fatalf("expected appointment id 7, got %d", created.ID)
	}
	if createdPatient.Rut != "12345678-5" {
		t.Fatalf("patient not forwarded, got rut %q", createdPatient.Rut)
	}
	if sent.PatientID != 42 {
		t.Fatalf("expected new patient id 42 on appointment, got %d", sent.PatientID)
	}
	if sent.Status != string(domain.StatusPending) {
		t.Fatalf("expected initial status pending, got %q", sent.Status)
	}

	want := time.Date(2027, 3, 9, 10, 30, 0, 0, timezone.Clinic())
	if !sent.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, sent.Date)
	}
}

func TestCreateAppointment_InvalidRutFailsBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{
		createPatient: func(context.Context, *models.Patient) (*models.Patient, error) {
			return nil, errors.New("must not be called")
		},
		createFn: func(context.Context, *models.Appointment) (*models.Appointment, error) {
			return nil, errors.New("must not be called")
		},
	}

	uc := NewCreateAppointment(gw, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		NewPatient: &models.Patient{
			Name:      "María Pérez",
			Rut:       "12345678-4", // dígito verificador incorrecto
			Email:     "maria@example.com",
			Phone:     "+56 9 1234 5678",
			BirthDate: "1990-04-12",
		},
		ProfessionalID: 3,
		SpecialtyID:    2,
		Date:           "2027-03-09",
		Time:           "10:30",
		InitialStatus:  domain.StatusPending,
	})

	assertBusinessCode(t, err, "invalid_rut")
	if gw.patientCalls != 0 || gw.createCalls != 0 {
		t.Fatalf("validation failure must not reach the network: %d patient, %d create",
			gw.patientCalls, gw.createCalls)
	}
}

func TestCreateAppointment_RejectsOtherInitialStatuses(t *testing.T) {
	uc := NewCreateAppointment(&fakeGateway{}, nil, zap.NewNop())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		PatientID:      1,
		ProfessionalID: 3,
		SpecialtyID:    2,
		Date:           "2027-03-09",
		Time:           "10:30",
		InitialStatus:  domain.StatusCancelled,
	})

	assertBusinessCode(t, err, "invalid_initial_status")
}

// ======================================================
// CANCEL
// ======================================================

func TestCancelAppointment_RequiresReasonBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{
		updateFn: func(context.Context, uint, domain.Update) (*models.Appointment, error) {
			return nil, errors.New("must not be called")
		},
	}
	st := storeWith(t, gw, []models.Appointment{
		{ID: 5, Date: time.Now().Add(time.Hour), Status: "confirmed"},
	})

	uc := NewCancelAppointment(gw, st, zap.NewNop())

	_, err := uc.Execute(context.Background(), 5, "   ")
	assertBusinessCode(t, err, "missing_cancellation_reason")
	if gw.updateCalls != 0 {
		t.Fatalf("expected 0 update calls, got %d", gw.updateCalls)
	}
}

func TestCancelAppointment_SendsTrimmedReason(t *testing.T) {
	gw := &fakeGateway{}
	st := storeWith(t, gw, []models.Appointment{
		{ID: 5, Date: time.Now().Add(time.Hour), Status: "confirmed"},
	})

	var got domain.Update
	gw.updateFn = func(_ context.Context, id uint, update domain.Update) (*models.Appointment, error) {
		if id != 5 {
			t.Fatalf("expected id 5, got %d", id)
		}
		got = update
		return &models.Appointment{ID: 5, Status: "cancelled"}, nil
	}

	uc := NewCancelAppointment(gw, st, zap.NewNop())

	if _, err := uc.Execute(context.Background(), 5, "  paciente de viaje  "); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if got.Status == nil || *got.Status != "cancelled" {
		t.Fatalf("expected status cancelled, got %v", got.Status)
	}
	if got.CancellationReason == nil || *got.CancellationReason != "paciente de viaje" {
		t.Fatalf("expected trimmed reason, got %v", got.CancellationReason)
	}
	if got.Date != nil || got.Notes != nil {
		t.Fatal("cancel must only touch status and reason")
	}
}

func TestCancelAppointment_NotFound(t *testing.T) {
	gw := &fakeGateway{}
	st := storeWith(t, gw, nil)

	uc := NewCancelAppointment(gw, st, zap.NewNop())

	_, err := uc.Execute(context.Background(), 99, "motivo")
	assertBusinessCode(t, err, "appointment_not_found")
}

// ======================================================
// CHANGE STATUS
// ======================================================

func TestChangeStatus_TerminalStatesRejected(t *testing.T) {
	gw := &fakeGateway{
		updateFn: func(context.Context, uint, domain.Update) (*models.Appointment, error) {
			return nil, errors.New("must not be called")
		},
	}
	st := storeWith(t, gw, []models.Appointment{
		{ID: 1, Date: time.Now(), Status: "confirmed"},
		{ID: 2, Date: time.Now(), Status: "cancelled"},
	})

	uc := NewChangeAppointmentStatus(gw, st, zap.NewNop())

	if _, err := uc.Execute(context.Background(), 1, domain.StatusPending); err == nil {
		t.Fatal("confirmed must be terminal for the quick menu")
	}
	if _, err := uc.Execute(context.Background(), 2, domain.StatusConfirmed); err == nil {
		t.Fatal("cancelled must be terminal for the quick menu")
	}
	if gw.updateCalls != 0 {
		t.Fatalf("expected 0 update calls, got %d", gw.updateCalls)
	}
}

func TestChangeStatus_PendingToConfirmed(t *testing.T) {
	gw := &fakeGateway{}
	st := storeWith(t, gw, []models.Appointment{
		{ID: 1, Date: time.Now(), Status: "pending"},
	})

	var got domain.Update
	gw.updateFn = func(_ context.Context, _ uint, update domain.Update) (*models.Appointment, error) {
		got = update
		return &models.Appointment{ID: 1, Status: "confirmed"}, nil
	}

	uc := NewChangeAppointmentStatus(gw, st, zap.NewNop())

	updated, err := uc.Execute(context.Background(), 1, domain.StatusConfirmed)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if updated.Status != "confirmed" {
		t.Fatalf("expected confirmed, got %q", updated.Status)
	}
	if got.Status == nil || *got.Status != "confirmed" {
		t.Fatalf("expected status confirmed in update, got %v", got.Status)
	}
}

// ======================================================
// RESCHEDULE
// ======================================================

func TestReschedule_ChecksFreshSlots(t *testing.T) {
	gw := &fakeGateway{
		availableFn: func(context.Context, domain.AvailabilityInput) ([]domain.TimeSlot, error) {
			return []domain.TimeSlot{
				{Start: "10:00", End: "10:30"},
				{Start: "10:30", End: "11:00"},
			}, nil
		},
	}
	st := storeWith(t, gw, []models.Appointment{
		{ID: 8, Date: time.Now(), Status: "pending", ProfessionalID: 3, SpecialtyID: 2},
	})

	avail := NewGetAvailability(gw, zap.NewNop())
	uc := NewRescheduleAppointment(gw, avail, st, zap.NewNop())

	// hora fuera de la lista fresca
	gw.updateFn = func(context.Context, uint, domain.Update) (*models.Appointment, error) {
		return nil, errors.New("must not be called")
	}
	_, err := uc.Execute(context.Background(), 8, "2027-03-09", "11:00")
	assertBusinessCode(t, err, "slot_unavailable")
	if gw.updateCalls != 0 {
		t.Fatalf("expected 0 update calls, got %d", gw.updateCalls)
	}

	// hora válida: viaja sólo el campo fecha
	var got domain.Update
	gw.updateFn = func(_ context.Context, id uint, update domain.Update) (*models.Appointment, error) {
		if id != 8 {
			t.Fatalf("expected id 8, got %d", id)
		}
		got = update
		return &models.Appointment{ID: 8, Status: "pending"}, nil
	}

	if _, err := uc.Execute(context.Background(), 8, "2027-03-09", "10:30"); err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := time.Date(2027, 3, 9, 10, 30, 0, 0, timezone.Clinic())
	if got.Date == nil || !got.Date.Equal(want) {
		t.Fatalf("expected date %v, got %v", want, got.Date)
	}
	if got.Status != nil || got.Notes != nil || got.CancellationReason != nil {
		t.Fatal("reschedule must only touch the date")
	}
}

func TestReschedule_CancelledRejected(t *testing.T) {
	gw := &fakeGateway{}
	st := storeWith(t, gw, []models.Appointment{
		{ID: 8, Date: time.Now(), Status: "cancelled"},
	})

	uc := NewRescheduleAppointment(gw, NewGetAvailability(gw, zap.NewNop()), st, zap.NewNop())

	_, err := uc.Execute(context.Background(), 8, "2027-03-09", "10:30")
	assertBusinessCode(t, err, "invalid_state")
}

// ======================================================
// NOTES
// ======================================================

func TestSaveNotes_EmptyIsValid(t *testing.T) {
	gw := &fakeGateway{}

	var got domain.Update
	gw.updateFn = func(_ context.Context, _ uint, update domain.Update) (*models.Appointment, error) {
		got = update
		return &models.Appointment{ID: 4}, nil
	}

	uc := NewSaveAppointmentNotes(gw, nil, zap.NewNop())

	if _, err := uc.Execute(context.Background(), 4, ""); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.Notes == nil || *got.Notes != "" {
		t.Fatalf("empty notes must still travel, got %v", got.Notes)
	}
}

// ======================================================
// AVAILABILITY
// ======================================================

func TestGetAvailability_ServerListIsAuthoritative(t *testing.T) {
	gw := &fakeGateway{
		availableFn: func(context.Context, domain.AvailabilityInput) ([]domain.TimeSlot, error) {
			return []domain.TimeSlot{{Start: "09:00", End: "09:30"}}, nil
		},
		professionalFn: func(context.Context, uint) (*models.Professional, error) {
			return nil, errors.New("local fallback must not run")
		},
	}

	uc := NewGetAvailability(gw, zap.NewNop())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 3,
		SpecialtyID:    2,
		Date:           time.Date(2027, 3, 9, 0, 0, 0, 0, timezone.Clinic()),
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(slots) != 1 || slots[0].Start != "09:00" {
		t.Fatalf("expected server slots verbatim, got %v", slots)
	}
}

func TestGetAvailability_FallsBackToLocalComputation(t *testing.T) {
	// martes futuro con agenda 09:00-11:00 y una cita a las 10:00
	date := time.Date(2027, 3, 9, 0, 0, 0, 0, timezone.Clinic())

	week := models.WeeklySchedule{
		models.WeekdayTue: models.DaySchedule{Enabled: true, Start: "09:00", End: "11:00"},
	}

	gw := &fakeGateway{
		availableFn: func(context.Context, domain.AvailabilityInput) ([]domain.TimeSlot, error) {
			return nil, errors.New("upstream down")
		},
		professionalFn: func(_ context.Context, id uint) (*models.Professional, error) {
			return &models.Professional{
				ID:          id,
				Specialties: []models.Specialty{{ID: 2, DurationMin: 30}},
				Schedule:    map[uint]models.WeeklySchedule{2: week},
			}, nil
		},
		listFn: func(context.Context, domain.ListInput) ([]models.Appointment, error) {
			return []models.Appointment{
				{
					ID:        1,
					Date:      time.Date(2027, 3, 9, 10, 0, 0, 0, timezone.Clinic()),
					Status:    "confirmed",
					Specialty: models.Specialty{ID: 2, DurationMin: 30},
				},
			}, nil
		},
	}

	uc := NewGetAvailability(gw, zap.NewNop())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 3,
		SpecialtyID:    2,
		Date:           date,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	starts := domain.SlotStarts(slots)
	want := []string{"09:00", "09:15", "09:30", "10:30"}
	if len(starts) != len(want) {
		t.Fatalf("expected %v, got %v", want, starts)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, starts)
		}
	}
}

func TestGetAvailability_MissingScheduleMeansEmptyDay(t *testing.T) {
	gw := &fakeGateway{
		availableFn: func(context.Context, domain.AvailabilityInput) ([]domain.TimeSlot, error) {
			return nil, errors.New("upstream down")
		},
		professionalFn: func(_ context.Context, id uint) (*models.Professional, error) {
			return &models.Professional{ID: id}, nil
		},
	}

	uc := NewGetAvailability(gw, zap.NewNop())

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		ProfessionalID: 3,
		SpecialtyID:    2,
		Date:           time.Date(2027, 3, 9, 0, 0, 0, 0, timezone.Clinic()),
	})
	if err != nil {
		t.Fatalf("missing schedule is not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected empty day, got %v", slots)
	}
}
