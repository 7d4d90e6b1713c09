package handler

import (
	"net/http"
	"reception/config"
	"reception/di"
	"reception/shared/logger"
	"sync"

	"github.com/rs/zerolog/log"

	transport "reception/transport/http"
)

var (
	once    sync.Once
	service *transport.HTTP
	initErr error
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		service, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, initErr.Error(), http.StatusInternalServerError)

		return
	}

	service.ServeHTTP(w, r)
}
