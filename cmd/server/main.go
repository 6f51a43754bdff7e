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

	"github.com/agrolink/farm_market/internal/config"
	"github.com/agrolink/farm_market/internal/es"
	"github.com/agrolink/farm_market/internal/handlers"
	"github.com/agrolink/farm_market/internal/httpserver"
	"github.com/agrolink/farm_market/internal/logging"
	"github.com/agrolink/farm_market/internal/loggingmw"
	"github.com/agrolink/farm_market/internal/mykafka"
	"github.com/agrolink/farm_market/internal/repo"
	"github.com/agrolink/farm_market/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	} else {
		logger.Warn("KAFKA_ADDRESS not set, domain events disabled")
	}

	store := repo.NewGormRepo(db)

	cropHandler := &handlers.CropHandler{
		Svc:      &service.CatalogService{Repo: store},
		Producer: producer,
		Index:    "crops",
	}
	deps := &httpserver.Deps{
		UserHandler:  &handlers.UserHandler{Svc: &service.UserService{Repo: store}, Producer: producer},
		CropHandler:  cropHandler,
		OrderHandler: &handlers.OrderHandler{Svc: &service.OrderService{Repo: store}, Producer: producer},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		cropHandler.ES = esClient
		deps.SearchHandler = &handlers.SearchHandler{ES: esClient, Index: "crops"}
	} else {
		logger.Warn("ES_URL not set, crop search disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

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

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
