package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	startupTime time.Time
	environment string
}

func newHealthHandler(startupTime time.Time, environment string) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		startupTime: startupTime,
		environment: environment,
	}
}

// status reports liveness plus how long the process has been up.
func (h healthHandler) status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]any{
			"status":      "ok",
			"environment": h.environment,
			"startedAt":   h.startupTime.UTC().Format(time.RFC3339),
			"uptime":      time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}
