package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-reservations/config"
	httpapi "restaurant-reservations/reservation-svc/internal/api/http"
	"restaurant-reservations/reservation-svc/internal/service"
	"restaurant-reservations/reservation-svc/internal/storage"
)

func newHandler(db *sql.DB, cache service.RecordCache, publisher service.EventPublisher, publicBaseURL string) *httpapi.Handler {
	repo := storage.NewPostgresRepository(db)
	qr := service.DefaultQRGenerator{BaseURL: publicBaseURL}

	return httpapi.NewHandler(
		service.NewUserService(repo, cache, publisher),
		service.NewRestaurantService(repo, cache, publisher),
		service.NewReservationService(repo, qr, cache, publisher),
		service.NewMenuService(repo, cache, publisher),
	)
}

func main() {
	migrateOnly := flag.Bool("migrate", false, "apply the database schema and exit")
	flag.Parse()

	cfg := config.Load()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err := storage.Migrate(migrateCtx, db)
	cancelMigrate()
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if *migrateOnly {
		log.Println("Migrations applied")
		return
	}

	// Interface values stay nil when a backend is not configured.
	var cache service.RecordCache
	if cfg.CacheEnabled() {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
		log.Printf("Record cache enabled (ttl %s)", cfg.CacheTTL)
	}

	var publisher service.EventPublisher
	if cfg.EventsEnabled() {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Printf("Publishing change events to %s", cfg.KafkaTopic)
	}

	handler := newHandler(db, cache, publisher, cfg.PublicBaseURL)
	srv := httpapi.NewServer(cfg.HTTPAddr, httpapi.NewRouter(handler))

	go func() {
		log.Printf("Reservation Service starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Server Shutdown:", err)
	}
	log.Println("Server exiting")
}
