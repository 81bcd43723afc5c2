package main

import (
	"linka/config"
	"linka/di"
	_ "linka/docs"
	"linka/helper"
	"linka/shared/logger"
	"linka/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Link-A API
// @version 1.0
// @description Rides and accommodations marketplace. Drivers and hosts publish listings, customers book them and providers approve.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer credential issued by the identity provider or by /api/auth/login.
func main() {
	cfg := config.Get()

	logger.Init(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
