package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/rs/zerolog/log"
)

type MiddlewareHandler interface {
	Logger(next http.Handler) http.Handler
}

type middleware struct {
	configs configs.Configs
}

func NewMiddlewareHandler(configs configs.Configs) MiddlewareHandler {
	return &middleware{
		configs: configs,
	}
}

func (m middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		subLogger := log.
			With().
			Str("request_id", uuid.New().String()).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("client_ip", req.RemoteAddr).
			Logger()

		req = req.WithContext(subLogger.WithContext(req.Context()))
		next.ServeHTTP(res, req)
	})
}

func methodNotAllowed(res http.ResponseWriter, req *http.Request) {
	logger := log.Ctx(req.Context()).With().Logger()
	logger.Error().Caller().Int("status_code", http.StatusMethodNotAllowed).Msg("method not allowed")
	http.Error(res, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
