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

	"github.com/joho/godotenv"

	"github.com/lakelandequipment/site/app/api"
	"github.com/lakelandequipment/site/app/cfg"
	"github.com/lakelandequipment/site/app/database"
	"github.com/lakelandequipment/site/app/site"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting site server", "version", appCfg.Version)

	db, err := database.NewConnection(
		appCfg.DBHost, appCfg.DBPort, appCfg.DBUser,
		appCfg.DBPassword, appCfg.DBName)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Connected to database")

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations applied", "version", version, "dirty", dirty)

	postRepo := database.NewPostRepository(db)
	catalogRepo := database.NewCatalogRepository(db)
	salesRepo := database.NewSalesRepository(db)
	siteRepo := database.NewSiteRepository(db)

	if err := registerSiteConfig(appCfg.SiteConfigFile, siteRepo); err != nil {
		slog.Error("Failed to register site configuration", "error", err)
		os.Exit(1)
	}

	handler := api.NewHandler(postRepo, catalogRepo, salesRepo, siteRepo)
	server := api.NewServer(handler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}

// registerSiteConfig applies the YAML site seed on every boot: settings are
// upserted, navigation is inserted only when the table is still empty so
// operator reordering and edits are never clobbered.
func registerSiteConfig(path string, siteRepo database.SiteRepository) error {
	config, err := site.Load(path)
	if err != nil {
		return err
	}
	if config == nil {
		slog.Info("No site configuration file found, skipping seed", "path", path)
		return nil
	}

	for key, value := range config.Settings {
		if err := siteRepo.UpsertSetting(key, value); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", key, err)
		}
	}
	slog.Info("Site settings registered", "count", len(config.Settings))

	count, err := siteRepo.GetNavigationCount()
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Debug("Navigation already populated, skipping seed", "items", count)
		return nil
	}

	for i, item := range config.Navigation {
		_, err := siteRepo.CreateNavigationItem(database.NavigationItem{
			Label:     item.Label,
			URL:       item.URL,
			Position:  i,
			IsVisible: true,
		})
		if err != nil {
			return fmt.Errorf("failed to seed navigation item %s: %w", item.Label, err)
		}
	}
	slog.Info("Navigation seeded", "items", len(config.Navigation))

	return nil
}
