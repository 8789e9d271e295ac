package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Session es el contexto explícito de sesión que viaja con cada request:
// identidad + rol, nada ambiente. Se construye en el middleware de auth y
// se limpia en logout.
type Session struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

const contextKey = "session"

func Inject(c *gin.Context, s *Session) {
	c.Set(contextKey, s)
}

func FromContext(c *gin.Context) (*Session, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil, false
	}
	s, ok := v.(*Session)
	return s, ok
}

// Manager persiste el blob de rol/identidad para continuidad de sesión.
// El contenido es opaco para el resto del sistema.
type Manager struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewManager(rdb *redis.Client, logger *zap.Logger) *Manager {
	return &Manager{
		rdb:    rdb,
		ttl:    24 * time.Hour,
		logger: logger,
	}
}

func (m *Manager) key(tokenID string) string {
	return "session:" + tokenID
}

// Remember guarda la sesión al primer request autenticado del token.
func (m *Manager) Remember(ctx context.Context, tokenID string, s *Session) {
	if m == nil || m.rdb == nil || tokenID == "" {
		return
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return
	}

	if err := m.rdb.Set(ctx, m.key(tokenID), raw, m.ttl).Err(); err != nil {
		m.logger.Debug("session.remember_failed", zap.Error(err))
	}
}

// Load recupera una sesión persistida; miss o falla devuelven false.
func (m *Manager) Load(ctx context.Context, tokenID string) (*Session, bool) {
	if m == nil || m.rdb == nil || tokenID == "" {
		return nil, false
	}

	raw, err := m.rdb.Get(ctx, m.key(tokenID)).Bytes()
	if err != nil {
		return nil, false
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	return &s, true
}

// Forget es el teardown de logout.
func (m *Manager) Forget(ctx context.Context, tokenID string) {
	if m == nil || m.rdb == nil || tokenID == "" {
		return
	}

	if err := m.rdb.Del(ctx, m.key(tokenID)).Err(); err != nil {
		m.logger.Debug("session.forget_failed", zap.Error(err))
	}
}
