package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	lorecli "github.com/Arx-Game/arxii-sub002/internal/clients/lore"
	"github.com/Arx-Game/arxii-sub002/internal/engine/rules"
	apiv1 "github.com/Arx-Game/arxii-sub002/internal/handlers/api/v1"
	chargenorch "github.com/Arx-Game/arxii-sub002/internal/orchestrators/chargen"
	"github.com/Arx-Game/arxii-sub002/internal/pkg/clock"
	"github.com/Arx-Game/arxii-sub002/internal/pkg/idgen"
	redisclient "github.com/Arx-Game/arxii-sub002/internal/redis"
	applicationrepo "github.com/Arx-Game/arxii-sub002/internal/repositories/application"
	draftrepo "github.com/Arx-Game/arxii-sub002/internal/repositories/draft"
)

var (
	httpPort  int
	redisAddr string
	loreURL   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the character creation API server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", envOr("REDIS_ADDR", "localhost:6379"), "Redis address")
	serverCmd.Flags().StringVar(&loreURL, "lore-url", os.Getenv("LORE_API_URL"), "Lore service base URL")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			slog.Warn("Failed to close redis client", "error", closeErr)
		}
	}()

	loreClient, err := lorecli.New(&lorecli.Config{
		BaseURL: loreURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create lore client: %w", err)
	}

	appClock := clock.New()
	rulesEngine := rules.NewAdapter()

	draftRepo, err := draftrepo.NewRedisRepository(&draftrepo.Config{
		Client: redisClient,
		Clock:  appClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create draft repository: %w", err)
	}

	orchestrator, err := chargenorch.New(&chargenorch.Config{
		DraftRepo:       draftRepo,
		ApplicationRepo: applicationrepo.NewRedisRepository(redisClient),
		Engine:          rulesEngine,
		LoreClient:      loreClient,
		IDGenerator:     idgen.NewUUID("chargen"),
		Clock:           appClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create character creation service: %w", err)
	}

	handler, err := apiv1.NewHandler(&apiv1.HandlerConfig{
		CharGenService: orchestrator,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	catalogHandler, err := apiv1.NewCatalogHandler(&apiv1.CatalogHandlerConfig{
		LoreClient: loreClient,
		Engine:     rulesEngine,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog handler: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", serveErr)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			slog.Warn("Graceful shutdown failed, forcing close", "error", shutdownErr)
			return srv.Close()
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
