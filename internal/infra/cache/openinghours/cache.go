package openinghours

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

const keyPrefix = "application-rounds:opening-hours:"

// Cache кэш часов работы помещений поверх Source.
// Ошибки redis не ломают запрос: логируем и идём в источник
type Cache struct {
	client Client
	source Source
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш часов работы
func NewCache(client Client, source Source, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

// GetOpeningHours возвращает часы работы помещения из кэша или из источника
func (c *Cache) GetOpeningHours(ctx context.Context, unitID int64) (*domain.OpeningHours, error) {
	key := cacheKey(unitID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var periods []cachedPeriod
		if err := json.Unmarshal(data, &periods); err == nil {
			return fromCached(periods), nil
		}
		c.logger.Warn("OpeningHoursCache: corrupted entry %s, reloading: %v", key, err)
	case errors.Is(err, redis.Nil):
		// промах кэша
	default:
		c.logger.Warn("OpeningHoursCache: redis get %s failed: %v", key, err)
	}

	hours, err := c.source.GetOpeningHours(ctx, unitID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(toCached(hours))
	if err != nil {
		c.logger.Error("OpeningHoursCache: failed to encode unit=%d: %v", unitID, err)
		return hours, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("OpeningHoursCache: redis set %s failed: %v", key, err)
	}

	return hours, nil
}

func cacheKey(unitID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, unitID)
}
