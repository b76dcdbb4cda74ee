package handler

import (
	"cafe/config"
	"cafe/di"
	"cafe/helper"
	"cafe/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once sync.Once
	app  http.Handler
)

// Handler is the serverless entrypoint. The application is built on the first request and
// reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if cfg.DB.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				log.Error().Err(err).Msg("Failed to migrate database")
			}
		}

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
