package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/agendasalud/clinic-agenda/internal/domain/appointment"
	"github.com/agendasalud/clinic-agenda/internal/models"
	"github.com/agendasalud/clinic-agenda/internal/timezone"
)

// AppointmentStore mantiene el snapshot de citas del rango visible.
// Cada fetch reemplaza la colección completa (nunca merge parcial) y
// recalcula displayStatus. El filtro de profesional dispara refetch; el de
// especialidad es puramente local sobre el último snapshot.
//
// Un token por fetch evita que una respuesta en vuelo superada pise el
// estado de una consulta más nueva.
type AppointmentStore struct {
	gw     domain.Gateway
	logger *zap.Logger
	nowFn  func() time.Time

	mu           sync.Mutex
	appointments []models.Appointment
	rangeStart   time.Time
	rangeEnd     time.Time

	professionalFilter uint              // 0 = todos
	specialtyFilter    map[uint]struct{} // nil = todas

	fetchToken uuid.UUID
	loading    bool
}

func NewAppointmentStore(gw domain.Gateway, logger *zap.Logger) *AppointmentStore {
	return &AppointmentStore{
		gw:     gw,
		logger: logger,
		nowFn:  timezone.Now,
	}
}

// WithNow fija el reloj del store; para pruebas.
func (s *AppointmentStore) WithNow(nowFn func() time.Time) *AppointmentStore {
	s.nowFn = nowFn
	return s
}

// SetRange cambia el rango visible y refetchea.
func (s *AppointmentStore) SetRange(ctx context.Context, start, end time.Time) error {
	s.mu.Lock()
	s.rangeStart = start
	s.rangeEnd = end
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SetProfessionalFilter acota el fetch a un profesional (0 = todos) y
// refetchea.
func (s *AppointmentStore) SetProfessionalFilter(ctx context.Context, professionalID uint) error {
	s.mu.Lock()
	s.professionalFilter = professionalID
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// SetSpecialtyFilter filtra localmente el último snapshot; no refetchea.
// ids vacío = todas las especialidades.
func (s *AppointmentStore) SetSpecialtyFilter(ids []uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) == 0 {
		s.specialtyFilter = nil
		return
	}

	filter := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		filter[id] = struct{}{}
	}
	s.specialtyFilter = filter
}

// Refresh refetchea el rango actual. Si otra consulta partió después, la
// respuesta de ésta se descarta.
func (s *AppointmentStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	in := domain.ListInput{
		Start:          s.rangeStart,
		End:            s.rangeEnd,
		ProfessionalID: s.professionalFilter,
	}
	token := uuid.New()
	s.fetchToken = token
	s.loading = true
	s.mu.Unlock()

	aps, err := s.gw.ListAppointments(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fetchToken != token {
		// respuesta superada por una consulta más nueva
		s.logger.Debug("appointment_store.stale_response_dropped")
		return nil
	}

	s.loading = false

	if err != nil {
		return err
	}

	now := s.nowFn()
	for i := range aps {
		domain.Annotate(&aps[i], now)
	}

	sort.Slice(aps, func(i, j int) bool {
		return aps[i].Date.Before(aps[j].Date)
	})

	s.appointments = aps
	return nil
}

func (s *AppointmentStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AppointmentStore) matches(ap *models.Appointment) bool {
	if s.specialtyFilter == nil {
		return true
	}
	_, ok := s.specialtyFilter[ap.SpecialtyID]
	return ok
}

// Snapshot entrega la colección visible (ya anotada y filtrada por
// especialidad), ordenada ascendente por fecha.
func (s *AppointmentStore) Snapshot() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Appointment, 0, len(s.appointments))
	for i := range s.appointments {
		if s.matches(&s.appointments[i]) {
			out = append(out, s.appointments[i])
		}
	}
	return out
}

// AppointmentsForDay filtra por día calendario exacto, respetando el
// filtro de especialidad. Orden ascendente por hora.
func (s *AppointmentStore) AppointmentsForDay(day time.Time) []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Appointment{}
	for i := range s.appointments {
		ap := &s.appointments[i]
		if s.matches(ap) && timezone.SameDay(ap.Date, day) {
			out = append(out, *ap)
		}
	}
	return out
}

func (s *AppointmentStore) CountForDay(day time.Time) int {
	return len(s.AppointmentsForDay(day))
}

// Get busca una cita del snapshot por id, ignorando filtros.
func (s *AppointmentStore) Get(id uint) (*models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID == id {
			ap := s.appointments[i]
			return &ap, true
		}
	}
	return nil, false
}
