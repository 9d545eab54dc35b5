package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/insightsphere/backend/internal/config"
	"github.com/insightsphere/backend/internal/handlers"
	"github.com/insightsphere/backend/internal/logger"
	"github.com/insightsphere/backend/internal/middleware"
	"github.com/insightsphere/backend/internal/repository"
	"github.com/insightsphere/backend/internal/service"
	"github.com/insightsphere/backend/pkg/supabase"
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
	// Load .env first so config can pick the values up; missing files
	// are fine outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(logger.Config{
		Level:   logger.ParseLevel(cfg.Log.Level),
		Format:  cfg.Log.Format,
		Backend: cfg.Log.Backend,
	})
	logger.SetDefault(log)

	log.Info("starting insight API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	moodLogRepo := repository.NewMoodLogRepository(supabaseClient)

	// Initialize services
	patternCfg := service.DefaultPatternConfig()
	if cfg.Insights.MinEntriesForPatterns > 0 {
		patternCfg.MinEntries = cfg.Insights.MinEntriesForPatterns
	}
	moodLogService := service.NewMoodLogService(moodLogRepo)
	insightsService := service.NewInsightsService(moodLogRepo, patternCfg, cfg.Insights.TrendPoints)

	// Initialize handlers
	moodLogHandler := handlers.NewMoodLogHandler(moodLogService)
	insightsHandler := handlers.NewInsightsHandler(insightsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit())
	v1.Use(middleware.Auth(supabaseClient))
	{
		// Mood log routes
		v1.GET("/mood-logs", moodLogHandler.GetMoodLogs)
		v1.POST("/mood-logs", middleware.RateLimitWrite(), moodLogHandler.CreateMoodLog)
		v1.DELETE("/mood-logs/:id", moodLogHandler.DeleteMoodLog)

		// Insights routes
		v1.GET("/insights", insightsHandler.GetInsights)
		v1.GET("/insights/stats", insightsHandler.GetStats)
		v1.GET("/insights/patterns", insightsHandler.GetPatterns)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
