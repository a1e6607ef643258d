// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"habithub/internal/api/handlers"
	"habithub/internal/audit"
	"habithub/internal/httpserver"
	"habithub/internal/logging"
	"habithub/internal/repository"
	"habithub/internal/services"
)

// openRepository connects to the configured database and refuses to continue
// on an outdated schema. With bootstrap set, a fresh database is migrated first.
func openRepository(bootstrap bool) (*repository.Repository, error) {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	if bootstrap {
		if err := repo.EnsureSchemaBootstrapped(); err != nil {
			repo.Close()
			logging.Log.Errorf("Failed to bootstrap database: %v", err)
			return nil, err
		}
	}

	if err := repo.ValidateSchema(); err != nil {
		repo.Close()
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return nil, err
	}
	return repo, nil
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := openRepository(true)
	if err != nil {
		return err
	}
	defer repo.Close()

	// Service Initialization
	infoService := services.NewInfoService(Version, StartTime)
	habitService := services.NewHabitService(repo)
	completionService := services.NewCompletionService(repo)
	analyticsService := services.NewAnalyticsService(repo)
	housekeepingService := services.NewHousekeepingService(repo, cfg)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled, logging.Log)

	if cfg.Seed.Enabled || initConfig != "" {
		if err := seedHabits(habitService); err != nil {
			return err
		}
	}

	h := handlers.NewHandlers(
		infoService,
		habitService,
		completionService,
		analyticsService,
		housekeepingService,
		loggerAuditor,
	)

	r := httpserver.SetupRouter(h)

	if cfg.HousekeepingInterval > 0 {
		housekeepingService.Start()
		defer housekeepingService.Stop()
	} else {
		logging.Log.Info("Background housekeeping disabled (interval is 0).")
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logging.Log.Infof("Server starting on %s (Database: %s)", serverAddr, cfg.Database.Path)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-stop:
	}
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
