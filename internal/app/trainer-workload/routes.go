// Package trainerworkload собирает зависимости сервиса нагрузки тренеров и регистрирует маршруты.
package trainerworkload

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/amangusss/trainer-workload/internal/http/handlers/health"
	"github.com/amangusss/trainer-workload/internal/http/handlers/workload/process"
	"github.com/amangusss/trainer-workload/internal/http/handlers/workload/summary"
	"github.com/amangusss/trainer-workload/internal/http/middlewarectx"
)

// WorkloadService объединяет операции, нужные HTTP-обработчикам.
type WorkloadService interface {
	process.Service
	summary.Service
}

// RouteOptions задаёт необязательные части маршрутизации.
type RouteOptions struct {
	// TokenParser включает проверку JWT, если не nil.
	TokenParser middlewarectx.TokenParser

	// Pinger используется в /health.
	Pinger    health.Pinger
	RateRPS   float64
	RateBurst int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, workloadService WorkloadService, opts RouteOptions) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middlewarectx.TransactionID(logger),
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, opts.RateRPS, opts.RateBurst))
		if opts.TokenParser != nil {
			r.Use(middlewarectx.JWTMiddleware(opts.TokenParser, logger))
		}
		r.Post("/workload", process.New(logger, workloadService).ServeHTTP)
		r.Get("/workload/{username}", summary.New(logger, workloadService).ServeHTTP)
	})

	r.Get("/health", health.New(logger, opts.Pinger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
