package handler

import (
	"net/http"
	"sync"

	"linka/config"
	"linka/di"
	"linka/shared/logger"
	"linka/shared/timezone"
	linkaHTTP "linka/transport/http"

	"github.com/rs/zerolog/log"
)

var (
	server *linkaHTTP.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Init(cfg)

		if err := timezone.Init(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("Falling back to UTC")
		}

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
