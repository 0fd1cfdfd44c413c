package handlers

import (
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/mdayat/daily-reflection-backend-service/internal/generation"
	"github.com/mdayat/daily-reflection-backend-service/internal/services"
)

// NewRestHandler wires the routes. generator may be nil when no credential is
// configured; reflection requests then fail with a configuration error.
func NewRestHandler(configs configs.Configs, customMiddleware MiddlewareHandler, generator generation.Generator) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.RealIP)
	router.Use(customMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	options := cors.Options{
		AllowedOrigins: strings.Split(configs.Env.AllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin"},
		MaxAge:         300,
	}
	router.Use(cors.Handler(options))
	router.Use(chiMiddleware.Heartbeat("/ping"))

	router.MethodNotAllowed(methodNotAllowed)

	reflectionService := services.NewReflectionService(configs, generator)
	reflectionHandler := NewReflectionHandler(configs, reflectionService)
	router.Post("/generate-reflection", reflectionHandler.GenerateReflection)
	router.Post("/.netlify/functions/generate-reflection", reflectionHandler.GenerateReflection)

	prayerService := services.NewPrayerService(configs)
	prayerHandler := NewPrayerHandler(configs, prayerService)
	router.Get("/prayers", prayerHandler.GetPrayers)
	router.Get("/prayers/{prayerId}", prayerHandler.GetPrayer)

	return router
}
