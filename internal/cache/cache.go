package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/canchalibre/field-booking/internal/config"
	"github.com/canchalibre/field-booking/internal/models"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Warnf("redis unavailable, catalog cache disabled: %v", err)
	}

	return client
}

// FieldCatalogCache guarda solo el catálogo de canchas activas.
// Los slots de disponibilidad nunca pasan por acá: se recalculan en cada
// consulta porque las reservas cambian de forma concurrente.
type FieldCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFieldCatalogCache(client *redis.Client, ttl time.Duration) *FieldCatalogCache {
	return &FieldCatalogCache{client: client, ttl: ttl}
}

func catalogKey(sportType string) string {
	if sportType == "" {
		return "fields:catalog"
	}
	return "fields:catalog:" + sportType
}

func (c *FieldCatalogCache) Get(ctx context.Context, sportType string) ([]models.Field, bool) {
	raw, err := c.client.Get(ctx, catalogKey(sportType)).Bytes()
	if err != nil {
		return nil, false
	}

	var fields []models.Field
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func (c *FieldCatalogCache) Set(ctx context.Context, sportType string, fields []models.Field) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, catalogKey(sportType), raw, c.ttl).Err(); err != nil {
		logrus.Debugf("catalog cache set failed: %v", err)
	}
}

// Invalidate borra todas las variantes del catálogo tras un cambio de cancha.
func (c *FieldCatalogCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, "fields:catalog*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logrus.Debugf("catalog cache invalidate failed: %v", err)
	}
}
