package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/sleep-bot/docs"
	"github.com/blaisecz/sleep-bot/internal/api/handler"
	"github.com/blaisecz/sleep-bot/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	userHandler        *handler.UserHandler
	sleepRecordHandler *handler.SleepRecordHandler
	achievementHandler *handler.AchievementHandler
	adviceHandler      *handler.AdviceHandler
	reportHandler      *handler.ReportHandler
	insightsHandler    *handler.InsightsHandler
	rateLimiter        *middleware.RateLimiter
	trustProxy         bool
}

func NewRouter(
	userHandler *handler.UserHandler,
	sleepRecordHandler *handler.SleepRecordHandler,
	achievementHandler *handler.AchievementHandler,
	adviceHandler *handler.AdviceHandler,
	reportHandler *handler.ReportHandler,
	insightsHandler *handler.InsightsHandler,
	rateLimiter *middleware.RateLimiter,
	trustProxy bool,
) *Router {
	return &Router{
		userHandler:        userHandler,
		sleepRecordHandler: sleepRecordHandler,
		achievementHandler: achievementHandler,
		adviceHandler:      adviceHandler,
		reportHandler:      reportHandler,
		insightsHandler:    insightsHandler,
		rateLimiter:        rateLimiter,
		trustProxy:         trustProxy,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	if rt.trustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Tracing)
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		if rt.rateLimiter != nil {
			r.Use(rt.rateLimiter.Handler)
		}

		r.Get("/sleep-schedule", handler.Schedule)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				r.Route("/sleep-records", func(r chi.Router) {
					r.Post("/", rt.sleepRecordHandler.Log)
					r.Get("/", rt.sleepRecordHandler.List)
					r.Get("/today", rt.sleepRecordHandler.Today)
				})

				r.Get("/achievements", rt.achievementHandler.List)
				r.Post("/achievements/evaluate", rt.achievementHandler.Evaluate)

				r.Get("/advice", rt.adviceHandler.Advice)
				r.Get("/tips", rt.adviceHandler.Tip)
				r.Get("/exercises", rt.adviceHandler.Exercise)

				r.Get("/reports/{period}", rt.reportHandler.Get)
				r.Get("/insights", rt.insightsHandler.Get)
				r.Post("/insights/feedback", rt.insightsHandler.Feedback)
			})
		})
	})

	return r
}
