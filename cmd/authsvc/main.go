package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aicad-labs/backend/internal/config"
	"github.com/aicad-labs/backend/internal/db"
	"github.com/aicad-labs/backend/internal/events"
	"github.com/aicad-labs/backend/internal/httpserver"
	"github.com/aicad-labs/backend/internal/logging"
	"github.com/aicad-labs/backend/internal/middleware"
	"github.com/aicad-labs/backend/internal/repo"
	"github.com/aicad-labs/backend/internal/service"
	"github.com/aicad-labs/backend/internal/tokens"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	tokenSvc := tokens.Service{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	}
	gormRepo := &repo.GormRepo{DB: gdb}
	authSvc := &service.AuthService{
		Repo:   gormRepo,
		Tokens: tokenSvc,
		Events: producer,
	}

	e.Use(middleware.RequestLogger(logger))
	httpserver.Register(e, &httpserver.Deps{
		Auth:   &httpserver.AuthHTTP{Svc: authSvc},
		Leads:  &httpserver.LeadsHTTP{Svc: authSvc},
		AuthMW: middleware.NewRequireAuth(tokenSvc, gormRepo),
	})

	go func() {
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
