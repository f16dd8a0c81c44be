// Sleep Bot API
//
// Serving layer for the sleep tracking bot: nightly logging, achievements,
// personal advice, tips and reports.
//
//	@title			Sleep Bot API
//	@version		1.0
//	@description	Sleep logging, achievements, personal advice and reports for the sleep tracking bot
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-records
//	@tag.description	Nightly bedtime and wake time logging
//
//	@tag.name			achievements
//	@tag.description	Badges earned from logged nights
//
//	@tag.name			insights
//	@tag.description	LLM narrative over reports and advice, with feedback ratings
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // Embed timezone database for minimal containers

	"github.com/blaisecz/sleep-bot/internal/api"
	"github.com/blaisecz/sleep-bot/internal/api/handler"
	"github.com/blaisecz/sleep-bot/internal/api/middleware"
	"github.com/blaisecz/sleep-bot/internal/config"
	"github.com/blaisecz/sleep-bot/internal/content"
	"github.com/blaisecz/sleep-bot/internal/langfuse"
	"github.com/blaisecz/sleep-bot/internal/llm"
	"github.com/blaisecz/sleep-bot/internal/metrics"
	"github.com/blaisecz/sleep-bot/internal/repository"
	"github.com/blaisecz/sleep-bot/internal/seed"
	"github.com/blaisecz/sleep-bot/internal/service"
	"github.com/blaisecz/sleep-bot/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleep-bot-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer shutdownTracer(context.Background())

	metrics.Register(prometheus.DefaultRegisterer)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	recordRepo := repository.NewSleepRecordRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	// Tips and exercises
	library, err := content.LoadLibrary(cfg.TipsFile, cfg.ExercisesFile)
	if err != nil {
		log.Fatalf("Failed to load tips: %v", err)
	}
	log.Printf("Loaded %d tips and %d exercises", len(library.Tips), len(library.Exercises))

	var lastSent content.LastSentStore = content.NewMemoryStore()
	if cfg.RedisURL != "" {
		redisStore, err := content.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		lastSent = redisStore
		log.Println("Using Redis for last-sent tips")
	}
	picker := content.NewPicker(lastSent, nil)

	// Initialize services
	locks := service.NewUserLocks()
	userService := service.NewUserService(userRepo)
	recordService := service.NewSleepRecordService(recordRepo, achievementRepo, userRepo, locks)
	achievementService := service.NewAchievementService(recordRepo, achievementRepo, userRepo, locks)
	adviceService := service.NewAdviceService(recordRepo, userRepo, library, picker)
	reportService := service.NewReportService(recordRepo, userRepo)

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(ctx, db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		for _, id := range seed.UserIDs() {
			if _, err := achievementService.Evaluate(ctx, id); err != nil {
				log.Fatalf("Failed to evaluate seeded achievements: %v", err)
			}
		}
	}

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISummaryModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	} else if cfg.InsightsPromptName != "" || cfg.InsightsPromptCache != "" {
		prompt, err := langfuseClient.LoadPrompt(ctx, langfuse.PromptRef{
			Name:      cfg.InsightsPromptName,
			Label:     cfg.InsightsPromptLabel,
			CachePath: cfg.InsightsPromptCache,
		})
		if err != nil {
			log.Printf("Using built-in insights prompt: %v", err)
		}
		openaiClient.WithSystemPrompt(prompt)
	}
	insightsService := service.NewInsightsService(reportService, adviceService, achievementRepo, openaiClient)

	// Rate limiting
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.Cleanup(ctx)

	// Setup router
	router := api.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewSleepRecordHandler(recordService),
		handler.NewAchievementHandler(achievementService),
		handler.NewAdviceHandler(adviceService),
		handler.NewReportHandler(reportService),
		handler.NewInsightsHandler(insightsService, langfuseClient),
		rateLimiter,
		cfg.TrustProxy,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown: %v", err)
		}
	}()

	log.Printf("Starting server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Server stopped")
}
