package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vsinha/batchplan/pkg/application/services/orchestration"
	"github.com/vsinha/batchplan/pkg/infrastructure/events"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
	"github.com/vsinha/batchplan/pkg/infrastructure/metrics"
	"github.com/vsinha/batchplan/pkg/interfaces/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Address = serveAddr
	}
	log := logger.New("server")

	recorder, err := metrics.NewPromRecorder(nil)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	planningConfig, err := orchestration.ConfigFromPlanning(cfg.Planning)
	if err != nil {
		return err
	}
	history := events.NewInMemoryEventStore(cfg.Server.History, logger.New("events"))
	orchestrator := orchestration.NewPlanningOrchestrator(planningConfig, recorder, logger.New).
		WithEventStore(history)

	if os.Getenv("APP_ENV") != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.SetupRoutes(api.NewHandlers(orchestrator, log).WithEvents(history), nil, log)
	srv := &http.Server{Addr: cfg.Server.Address, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
