package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT" default:"8080"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME" default:"linka"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey      string `envconfig:"API_KEY"`
		Idempotency struct {
			Enable     bool `envconfig:"ENABLE" default:"true"`
			TTLSeconds int  `envconfig:"TTL_SECONDS" default:"86400"`
		} `envconfig:"IDEMPOTENCY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME"`
			MigrationTable string `envconfig:"MIGRATION_TABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			Read           struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"READ"`
			Write struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Username string `envconfig:"USER"`
				Password string `envconfig:"PASSWORD"`
				Name     string `envconfig:"NAME"`
				Timezone string `envconfig:"TIMEZONE"`
				SSLMode  string `envconfig:"SSL_MODE"`
			} `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	Identity struct {
		Provider string `envconfig:"PROVIDER" default:"chain"`
		Firebase struct {
			ProjectID       string `envconfig:"PROJECT_ID"`
			CredentialsFile string `envconfig:"CREDENTIALS_FILE"`
		} `envconfig:"FIREBASE"`
	} `envconfig:"IDENTITY"`

	Events struct {
		Broker    string `envconfig:"BROKER" default:"none"`
		Topic     string `envconfig:"TOPIC" default:"booking.events"`
		WebSocket struct {
			Enable         bool     `envconfig:"ENABLE" default:"true"`
			AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS"`
		} `envconfig:"WEBSOCKET"`
	} `envconfig:"EVENTS"`

	Kafka struct {
		Brokers       []string `envconfig:"BROKERS"`
		ConsumerGroup string   `envconfig:"CONSUMER_GROUP"`
		SASL          struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	RabbitMQ struct {
		Host     string `envconfig:"HOST"`
		Port     int    `envconfig:"PORT" default:"5672"`
		User     string `envconfig:"USER"`
		Password string `envconfig:"PASSWORD"`
		Exchange string `envconfig:"EXCHANGE" default:"booking_topic"`
		MaxRetry int    `envconfig:"MAX_RETRY" default:"5"`
	} `envconfig:"RABBITMQ"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf    *Config
	loadErr error
	once    sync.Once
)

var errMissingSetting = errors.New("missing required setting")

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var missing []string

	if c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "" {
		missing = append(missing, "JWT_ACCESS_SECRET/JWT_REFRESH_SECRET")
	}

	if c.Events.Broker == "kafka" && len(c.Kafka.Brokers) == 0 {
		missing = append(missing, "KAFKA_BROKERS")
	}

	if c.Events.Broker == "rabbitmq" && c.RabbitMQ.Host == "" {
		missing = append(missing, "RABBITMQ_HOST")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingSetting, strings.Join(missing, ", "))
	}

	return nil
}

// Get returns the process-wide configuration, loading it on first use.
func Get() *Config {
	once.Do(func() {
		conf, loadErr = Load()
		if loadErr == nil {
			log.Info().Str("env", conf.Server.Env).Msg("Service configuration loaded")
		}
	})

	if loadErr != nil {
		log.Fatal().Err(loadErr).Msg("Failed to initialize configuration")
	}

	return conf
}
