package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/eco-diary/internal/adapters/cache"
	"github.com/comitanigiacomo/eco-diary/internal/adapters/export"
	adapterHTTP "github.com/comitanigiacomo/eco-diary/internal/adapters/handler/http"
	"github.com/comitanigiacomo/eco-diary/internal/adapters/repository"
	"github.com/comitanigiacomo/eco-diary/internal/config"
	"github.com/comitanigiacomo/eco-diary/internal/core/domain"
	"github.com/comitanigiacomo/eco-diary/internal/core/services"
	"github.com/comitanigiacomo/eco-diary/internal/core/workers"
)

type entryStore interface {
	domain.DayEntryRepository
	adapterHTTP.Pinger
}

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("Redis unavailable, running without cache and rate limiting: %v", err)
			rdb = nil
		} else {
			defer rdb.Close()
			log.Println("Redis connected successfully.")
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	router, worker := newApp(cfg, store, rdb, startTime)
	worker.Start(ctx)
	worker.Enqueue("startup")

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Eco Diary API running on http://localhost:%s (storage: %s)", cfg.Port, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

// newApp wires repositories, services and handlers. The returned worker is
// not started.
func newApp(cfg *config.Config, store entryStore, rdb *redis.Client, startTime time.Time) (*gin.Engine, *workers.StreakWorker) {
	var entryRepo domain.DayEntryRepository = store
	var streakStore domain.StreakStore = repository.NewInMemoryStreakStore()
	if rdb != nil {
		entryRepo = repository.NewCachedEntryRepository(store, rdb)
		streakStore = repository.NewRedisStreakStore(rdb)
	}

	worker := workers.NewStreakWorker(entryRepo, streakStore).WithLocation(cfg.Location)
	content := services.NewContentService(nil)

	entryService := services.NewEntryService(entryRepo, worker)
	calendarService := services.NewCalendarService(entryRepo)
	statsService := services.NewStatsService(entryRepo, streakStore)
	bookletService := services.NewBookletService(entryRepo, content, export.NewPDFRenderer())

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:    adapterHTTP.NewHabitHandler(),
		EntryHandler:    adapterHTTP.NewEntryHandler(entryService, cfg.Location),
		CalendarHandler: adapterHTTP.NewCalendarHandler(calendarService, cfg.Location),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService),
		ContentHandler:  adapterHTTP.NewContentHandler(content),
		ExportHandler:   adapterHTTP.NewExportHandler(bookletService, cfg.Location),
		Store:           store,
		StorageDriver:   cfg.StorageDriver,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit,
		RateWindow:      cfg.RateWindow,
		StartTime:       startTime,
	})

	return router, worker
}

func openStore(cfg *config.Config) (entryStore, func()) {
	if cfg.StorageDriver == config.StorageMemory {
		log.Println("Using in-memory storage; entries are lost on restart.")
		return repository.NewInMemoryEntryRepository(), func() {}
	}

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repository.EnsureSchema(ctx, db); err != nil {
		db.Close()
		log.Fatalf("Critical: %v", err)
	}

	log.Println("Database connected successfully.")

	return repository.NewPostgresEntryRepository(db), func() { db.Close() }
}
