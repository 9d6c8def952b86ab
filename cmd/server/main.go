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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/api"
	"github.com/icodeu/site-content/pkg/sitecontent/auth"
	"github.com/icodeu/site-content/pkg/sitecontent/config"
	"github.com/icodeu/site-content/pkg/sitecontent/mailqueue"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(config.WithEnv())
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if cfg.DatabaseType == "postgres" {
		if err := config.PingPostgres(cfg.DatabaseURL, cfg.DBSchema); err != nil {
			slog.Error("database check failed", "error", err)
			os.Exit(1)
		}
	}

	store, err := cfg.BuildStore()
	if err != nil {
		slog.Error("failed to build store", "error", err)
		os.Exit(1)
	}

	authenticator := auth.New(store, cfg.JWTSecret, cfg.TokenTTL)

	mailCtx, stopMail := context.WithCancel(context.Background())
	defer stopMail()
	mail := mailqueue.New(64, nil)
	go mail.Run(mailCtx)

	svc, err := cfg.BuildService(store, sitecontent.WithMailQueue(mail))
	if err != nil {
		slog.Error("failed to build service", "error", err)
		os.Exit(1)
	}

	blobStore, err := cfg.BuildDefaultBlobStore()
	if err != nil {
		slog.Error("failed to build blob store", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if cfg.Environment == "development" {
		r.Use(corsAllowAll)
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"healthy","environment":%q}`, cfg.Environment)
	})

	tokenAuth := authenticator.TokenAuth()
	r.Route("/api", func(r chi.Router) {
		r.Mount("/auth", api.NewAuthHandler(authenticator).Routes())
		r.Mount("/files", api.NewFilesHandler(blobStore, tokenAuth).Routes())
		r.Mount("/", api.NewContentHandler(svc, tokenAuth).Routes())
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		slog.Info("server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"database", cfg.DatabaseType,
			"storage", cfg.DefaultStorageBackend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func corsAllowAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
