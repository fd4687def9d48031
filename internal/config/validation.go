package config

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required when redis is enabled", ErrInvalidConfig)
	}

	if err := c.Schedule.Window().Validate(); err != nil {
		return fmt.Errorf("%w: schedule window: %v", ErrInvalidConfig, err)
	}

	if _, err := domain.ParseAggregationPolicy(c.Schedule.DefaultPolicy); err != nil {
		return fmt.Errorf("%w: schedule.default_policy: %v", ErrInvalidConfig, err)
	}

	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("%w: schedule.timezone: %v", ErrInvalidConfig, err)
	}

	return nil
}
