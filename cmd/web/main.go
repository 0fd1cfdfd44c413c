package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/mdayat/daily-reflection-backend-service/internal/generation"
	"github.com/mdayat/daily-reflection-backend-service/internal/handlers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	logger := log.With().Caller().Logger()

	env, err := configs.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Send()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := generation.New(ctx, env)
	if err != nil {
		if !errors.Is(err, configs.ErrUnconfigured) {
			logger.Fatal().Err(err).Send()
		}
		logger.Warn().Strs("checked_variables", configs.CredentialSources).Msg("generation credential missing, reflections will fail")
	}

	configs := configs.NewConfigs(env)
	customMiddleware := handlers.NewMiddlewareHandler(configs)
	rest := handlers.NewRestHandler(configs, customMiddleware, generator)

	server := &http.Server{
		Addr:    ":" + env.Port,
		Handler: rest,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("provider", env.GenAIProvider).Str("model", env.GenAIModel).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Send()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down server")
	}
}
