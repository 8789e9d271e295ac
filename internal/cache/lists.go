package cache

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ListCache es el caché read-through de los listados de sólo lectura
// (profesionales, pacientes, especialidades), clavado por parámetros de
// consulta. Cualquier falla de Redis degrada a un fetch directo: un
// listado jamás bloquea la página por el caché.
type ListCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewListCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Key arma una clave estable a partir del recurso y sus parámetros.
func Key(resource string, params map[string]string) string {
	parts := []string{"lists", resource}

	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k+"="+v)
		}
	}
	sort.Strings(keys)

	return strings.Join(append(parts, keys...), ":")
}

// Get deserializa el valor cacheado en out. Devuelve false ante miss o
// falla.
func (c *ListCache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.rdb == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("list_cache.get_failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Debug("list_cache.decode_failed", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (c *ListCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Debug("list_cache.set_failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate borra las entradas de un recurso tras una mutación.
func (c *ListCache) Invalidate(ctx context.Context, resource string) {
	if c == nil || c.rdb == nil {
		return
	}

	pattern := "lists:" + resource + ":*"
	keys, err := c.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		// también la clave sin parámetros
		keys = nil
	}
	keys = append(keys, "lists:"+resource)

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Debug("list_cache.invalidate_failed", zap.String("resource", resource), zap.Error(err))
	}
}
