package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/ai_translator/internal/config"
	"github.com/Skotchmaster/ai_translator/internal/events"
	"github.com/Skotchmaster/ai_translator/internal/httpserver"
	"github.com/Skotchmaster/ai_translator/internal/logging"
	loggingmw "github.com/Skotchmaster/ai_translator/internal/middleware/logging"
	"github.com/Skotchmaster/ai_translator/internal/repo"
	"github.com/Skotchmaster/ai_translator/internal/secret"
	"github.com/Skotchmaster/ai_translator/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, configuration)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var brokers []string
	if configuration.KafkaAddress != "" {
		brokers = []string{configuration.KafkaAddress}
	}
	prod := events.NewProducer(brokers)

	userRepo := &repo.GormRepo{
		DB:    db,
		Table: configuration.UserTableName,
	}

	authSvc := &service.AuthService{
		Repo:     userRepo,
		Secrets:  secret.NewProvider(config.SecretEnvKey),
		Producer: prod,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHandler{
			Svc:       authSvc,
			Repo:      userRepo,
			Producer:  prod,
			UserTable: configuration.UserTableName,
		},
	})

	srv := &http.Server{
		Addr:         configuration.ServerAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
