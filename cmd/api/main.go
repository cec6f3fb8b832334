// Package main is the entry point for the recreation programs API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkordes/rec-registration/internal/config"
	"github.com/pkordes/rec-registration/internal/handler"
	"github.com/pkordes/rec-registration/internal/repo"
	"github.com/pkordes/rec-registration/internal/service"
	"github.com/pkordes/rec-registration/internal/store"
	"github.com/pkordes/rec-registration/internal/upload"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// A SQLite file path or a postgres:// URL. Open pings, so an unreachable
	// database stops startup here instead of on the first request.
	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := store.Migrate(ctx, db); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready", "dialect", db.Dialect())

	// --- Image store ------------------------------------------------------
	images, err := newImageStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialise image store", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	srv := handler.NewServer(
		service.NewProgramService(repo.NewProgramRepo(db)),
		service.NewRosterService(repo.NewRosterRepo(db)),
		images,
		db,
		logger,
	)
	router := handler.NewRouter(srv, handler.RouterOptions{
		Logger:       logger,
		CORSOrigins:  cfg.CORSOrigins,
		MaxBodyBytes: cfg.MaxBodyBytes,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	// Read and write windows are sized for multipart image uploads.
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// newImageStore returns a MinIO-backed store when S3_ENDPOINT is set and a
// local directory store otherwise.
func newImageStore(ctx context.Context, cfg config.Config) (handler.ImageStore, error) {
	if cfg.S3.Enabled() {
		slog.Info("storing images in object storage", "endpoint", cfg.S3.Endpoint, "bucket", cfg.S3.Bucket)
		s, err := upload.NewMinioStore(ctx, upload.MinioConfig{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	slog.Info("storing images on disk", "dir", cfg.UploadDir)
	s, err := upload.NewDiskStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	return s, nil
}
