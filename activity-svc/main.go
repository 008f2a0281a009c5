package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "restaurant-reservations/activity-svc/internal/api/http"
	"restaurant-reservations/activity-svc/internal/service"
	"restaurant-reservations/activity-svc/internal/storage"
	"restaurant-reservations/config"
)

func main() {
	cfg := config.Load()
	if !cfg.CacheEnabled() || !cfg.EventsEnabled() {
		log.Fatal("Failed to start: REDIS_HOST and KAFKA_BROKER are required")
	}

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := storage.NewStore(rdb)
	consumer := service.NewConsumer(reader, store)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewActivityService(store))
	srv := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler))

	go func() {
		log.Printf("Activity Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server gracefully ...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
