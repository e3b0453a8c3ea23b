package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/FilmThanapol/feeldiary/backend/internal/config"
	"github.com/FilmThanapol/feeldiary/backend/internal/handlers"
	"github.com/FilmThanapol/feeldiary/backend/internal/logger"
	"github.com/FilmThanapol/feeldiary/backend/internal/middleware"
	"github.com/FilmThanapol/feeldiary/backend/internal/repository"
	"github.com/FilmThanapol/feeldiary/backend/internal/service"
	"github.com/FilmThanapol/feeldiary/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})
	logger.SetDefault(log)

	log.Info("starting FeelDiary API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Repositories
	entryRepo := repository.NewMoodEntryRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)

	// Services
	entryService := service.NewMoodEntryService(entryRepo)
	analyticsService := service.NewAnalyticsService(entryRepo, log)
	insightsService := service.NewInsightsService(entryRepo)
	exportService := service.NewExportService(entryRepo)
	authService := service.NewAuthService(supabaseClient, userRepo)

	// Handlers
	moodHandler := handlers.NewMoodHandler(entryService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	exportHandler := handlers.NewExportHandler(exportService)
	authHandler := handlers.NewAuthHandler(authService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimitAuth())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", middleware.Auth(supabaseClient), authHandler.Logout)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
		}

		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Mood entry routes
			protected.GET("/moods", moodHandler.ListEntries)
			protected.POST("/moods", moodHandler.SaveEntry)
			protected.GET("/moods/:date", moodHandler.GetEntry)
			protected.PUT("/moods/:date", moodHandler.UpdateEntry)
			protected.DELETE("/moods/:date", moodHandler.DeleteEntry)

			// Analytics routes
			protected.GET("/analytics/dashboard", analyticsHandler.Dashboard)
			protected.GET("/analytics/patterns", analyticsHandler.Patterns)
			protected.GET("/analytics/heatmap", analyticsHandler.Heatmap)
			protected.GET("/analytics/predictions", analyticsHandler.Predictions)

			// Insights and export
			protected.GET("/insights", insightsHandler.GetInsights)
			protected.GET("/export/csv", exportHandler.ExportCSV)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
