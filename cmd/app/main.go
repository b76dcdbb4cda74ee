package main

import (
	"cafe/config"
	"cafe/di"
	"cafe/helper"
	"cafe/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Cafe & Wifi API
// @version 1.0
// @description A public API of cafes with wifi and sockets for remote workers.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
