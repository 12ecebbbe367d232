package services

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services. Each connection is optional and nil when
// its URL is empty.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

func InitServices(redisURL, postgresURL string) (*Services, error) {
	services := &Services{}

	if postgresURL != "" {
		postgres, err := InitPostgres(postgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	}

	if redisURL != "" {
		redis, err := InitRedis(redisURL)
		if err != nil {
			_ = services.Close()
			return nil, err
		}
		services.Redis = redis
	}

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	var errs []error

	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing postgres: %w", err))
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing redis: %w", err))
		}
	}

	return errors.Join(errs...)
}
