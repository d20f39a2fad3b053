package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       int  `env:"PORT" envDefault:"8000"`
	IsTestMode bool `env:"TEST_MODE"`

	Secret         string        `env:"SECRET,required,notEmpty"`
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"24h"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	RedisURL       string `env:"REDIS_URL,required,notEmpty"`

	RabbitmqURL              string `env:"RABBITMQ_URL,required,notEmpty"`
	RabbitmqExchange         string `env:"RABBITMQ_EXCHANGE" envDefault:"petminder"`
	RabbitmqReminderDueQueue string `env:"RABBITMQ_REMINDER_DUE_QUEUE" envDefault:"reminder_due"`

	BcryptHasherCost int `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	ReminderHorizonCount   int           `env:"REMINDER_HORIZON_COUNT" envDefault:"5"`
	DueRemindersScanPeriod time.Duration `env:"DUE_REMINDERS_SCAN_PERIOD" envDefault:"1m"`
	DueRemindersBatchSize  uint          `env:"DUE_REMINDERS_BATCH_SIZE" envDefault:"100"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

func Load() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}

// MigrationsConfig is the subset read by the migration command.
type MigrationsConfig struct {
	IsTestMode     bool   `env:"TEST_MODE"`
	PostgresqlURL  string `env:"POSTGRESQL_URL,required,notEmpty"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

func LoadMigrations() (*MigrationsConfig, error) {
	config := &MigrationsConfig{}
	if err := env.Parse(config); err != nil {
		return nil, err
	}
	return config, nil
}
