package main

import (
	"os"
	"reception/config"
	"reception/di"
	"reception/infras/metrics"
	"reception/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	logger.UseJSONOutput(cfg, os.Stdout)

	metrics.Register()

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
