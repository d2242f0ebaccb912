// Package config loads the chaindiff settings from CHAINDIFF_* environment
// variables.
package config

import (
	"time"

	"github.com/gabapcia/chaindiff/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix of every setting.
const Prefix = "chaindiff"

type Config struct {
	Nodes []string `envconfig:"NODES" default:"http://127.0.0.1:7000,http://127.0.0.1:7001,http://127.0.0.1:7002" validate:"required,min=1,dive,nodeurl"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s" validate:"gt=0"`
	RetryMax       int           `envconfig:"RETRY_MAX" default:"0" validate:"gte=0"`
	RetryWaitMin   time.Duration `envconfig:"RETRY_WAIT_MIN" default:"1s" validate:"gt=0"`
	RetryWaitMax   time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s" validate:"gtefield=RetryWaitMin"`
	RoundAttempts  uint          `envconfig:"ROUND_ATTEMPTS" default:"3" validate:"gte=1"`

	// RoundRetryDelay is the first pause before retrying a failed watch round,
	// doubled on every attempt up to RoundRetryMaxDelay.
	RoundRetryDelay    time.Duration `envconfig:"ROUND_RETRY_DELAY" default:"1s" validate:"gt=0"`
	RoundRetryMaxDelay time.Duration `envconfig:"ROUND_RETRY_MAX_DELAY" default:"30s" validate:"gtefield=RoundRetryDelay"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// DumpDir enables the raw JSON dump of chain transaction snapshots.
	DumpDir string `envconfig:"DUMP_DIR"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	// RedisHistorySize caps the report history list kept per kind.
	RedisHistorySize int64 `envconfig:"REDIS_HISTORY_SIZE" default:"100" validate:"gt=0"`

	// ArchivePath enables the LevelDB report archive when Redis is not configured.
	ArchivePath string `envconfig:"ARCHIVE_PATH"`

	NATSURL     string `envconfig:"NATS_URL" validate:"omitempty,url"`
	NATSSubject string `envconfig:"NATS_SUBJECT" default:"chaindiff.reports"`

	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"chaindiff" validate:"required"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
