package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/agendasalud/clinic-agenda/internal/store"
)

// refreshStore dispara el refetch post-mutación. Es best-effort: la
// mutación ya fue aceptada por el backend, una falla acá sólo se loguea.
func refreshStore(ctx context.Context, st *store.AppointmentStore, logger *zap.Logger) {
	if st == nil {
		return
	}
	if err := st.Refresh(ctx); err != nil {
		logger.Warn("appointment_store.refresh_failed", zap.Error(err))
	}
}
