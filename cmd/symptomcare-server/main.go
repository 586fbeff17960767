package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/symptomcare/symptomcare/internal/config"
	"github.com/symptomcare/symptomcare/internal/domain/catalog"
	"github.com/symptomcare/symptomcare/internal/domain/interview"
	"github.com/symptomcare/symptomcare/internal/domain/safety"
	"github.com/symptomcare/symptomcare/internal/platform/auth"
	"github.com/symptomcare/symptomcare/internal/platform/db"
	"github.com/symptomcare/symptomcare/internal/platform/genai"
	"github.com/symptomcare/symptomcare/internal/platform/middleware"
)

const (
	// requestTimeout bounds one request end to end. It must exceed the
	// gateway timeout or slow generations would surface as 504s instead
	// of falling back.
	requestTimeout = 60 * time.Second

	// sweepInterval is the cadence of the session expiry sweep.
	sweepInterval = time.Minute
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "symptomcare-server",
		Short: "Symptom assessment API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the assessment API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL must be set to run migrations")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL must be set to check migration status")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the embedded medicine catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories with candidate counts per tier and age group",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New()
			fmt.Printf("%-14s %-12s %-12s %-12s %s\n", "CATEGORY", "MILD/ADULT", "MILD/CHILD", "MOD/ADULT", "MOD/CHILD")
			for _, category := range cat.Categories() {
				fmt.Printf("%-14s %-12d %-12d %-12d %d\n",
					category,
					len(cat.Candidates(category, catalog.TierMild, catalog.AgeAdult)),
					len(cat.Candidates(category, catalog.TierMild, catalog.AgeChild)),
					len(cat.Candidates(category, catalog.TierModerate, catalog.AgeAdult)),
					len(cat.Candidates(category, catalog.TierModerate, catalog.AgeChild)))
			}
			return nil
		},
	}
	cmd.AddCommand(listCmd)

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check catalog completeness and safety rule coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New()
			if err := cat.Validate(); err != nil {
				return err
			}
			if err := validateRuleCoverage(cat); err != nil {
				return err
			}
			fmt.Printf("Catalog OK: %d categories, all safety rules covered.\n", len(cat.Categories()))
			return nil
		},
	}
	cmd.AddCommand(validateCmd)

	return cmd
}

// validateRuleCoverage checks that every substance-keyed safety rule matches
// at least one catalog medicine. A rule that matches nothing is dead policy,
// usually the result of a renamed substance.
func validateRuleCoverage(cat *catalog.Catalog) error {
	var names []string
	for _, category := range cat.Categories() {
		for _, tier := range []catalog.Tier{catalog.TierMild, catalog.TierModerate} {
			for _, age := range []catalog.AgeGroup{catalog.AgeChild, catalog.AgeAdult} {
				for _, med := range cat.Candidates(category, tier, age) {
					names = append(names, strings.ToLower(med.Name))
				}
			}
		}
	}

	for rule, substances := range safety.RuleSubstances() {
		if !anySubstanceListed(names, substances) {
			return fmt.Errorf("safety rule %q matches no catalog medicine (substances: %s)",
				rule, strings.Join(substances, ", "))
		}
	}
	return nil
}

func anySubstanceListed(names, substances []string) bool {
	for _, name := range names {
		for _, s := range substances {
			if strings.Contains(name, s) {
				return true
			}
		}
	}
	return false
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		logger = logger.Level(level)
	}

	// Session store: PostgreSQL when configured, in-memory otherwise
	ctx := context.Background()
	var (
		store interview.Store
		pool  *pgxpool.Pool
	)
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		store = interview.NewPGStore(pool, cfg.SessionTTL())
		logger.Info().Msg("connected to database")
	} else {
		store = interview.NewMemoryStore(cfg.SessionTTL())
		logger.Warn().Msg("DATABASE_URL not set; assessment sessions are kept in memory and lost on restart")
	}

	// Question generation gateway with LRU response caching
	if cfg.GenAIAPIKey == "" {
		logger.Warn().Msg("GENAI_API_KEY not set; interviews will use the built-in fallback questions")
	}
	gateway := genai.NewCachedGateway(genai.NewClient(genai.Config{
		APIKey:  cfg.GenAIAPIKey,
		BaseURL: cfg.GenAIBaseURL,
		Model:   cfg.GenAIModel,
		Timeout: cfg.GenAITimeout(),
	}), cfg.CacheCapacity, cfg.CacheTTL())

	// Domain wiring
	cat := catalog.New()
	if err := cat.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("medicine catalog failed validation")
	}
	svc := interview.NewService(store, gateway, cat, logger)
	handler := interview.NewHandler(svc, cat)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestTimeout(requestTimeout))

	// Auth middleware
	if cfg.AuthEnabled() {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{Secret: []byte(cfg.JWTSecret)}))
	} else {
		e.Use(auth.DevAuthMiddleware())
	}

	// Audit middleware
	e.Use(middleware.Audit(logger))

	// API group with rate limiting
	api := e.Group("/api/v1")
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	handler.RegisterRoutes(api)

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	if pool != nil {
		e.GET("/health/db", db.HealthHandler(pool))
	}

	// Session expiry sweep
	if exp, ok := store.(interview.Expirer); ok && cfg.SessionTTL() > 0 {
		sweepCtx, sweepCancel := context.WithCancel(ctx)
		defer sweepCancel()
		go sweepExpiredSessions(sweepCtx, exp, sweepInterval, logger)
	}

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

// sweepExpiredSessions drops abandoned sessions on a fixed cadence until ctx
// is cancelled.
func sweepExpiredSessions(ctx context.Context, store interview.Expirer, interval time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dropped, err := store.DeleteExpired(ctx)
			if err != nil {
				logger.Error().Err(err).Msg("session expiry sweep failed")
				continue
			}
			if dropped > 0 {
				logger.Info().Int("dropped", dropped).Msg("expired assessment sessions removed")
			}
		}
	}
}
