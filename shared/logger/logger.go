package logger

import (
	"io"
	"os"
	"time"

	"linka/config"
	"linka/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.InfoLevel

// Init points the global logger at stdout. Development gets the console
// writer, every other environment emits JSON lines tagged with the service.
func Init(cfg *config.Config) {
	InitWithWriter(cfg, os.Stdout)
}

func InitWithWriter(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	env := constant.ServerEnvDevelopment
	if cfg != nil && cfg.Server.Env != constant.Empty {
		env = cfg.Server.Env
	}

	if env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(out).With().
		Timestamp().
		Str("service", constant.ServiceName).
		Str("env", env).
		Logger()

	level := defaultLevel
	if cfg != nil {
		level = Level(cfg.Server.LogLevel)
	}

	zerolog.SetGlobalLevel(level)
}

// Level parses SERVER_LOG_LEVEL, falling back to info.
func Level(value string) zerolog.Level {
	if value == constant.Empty {
		return defaultLevel
	}

	level, err := zerolog.ParseLevel(value)
	if err != nil {
		return defaultLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
