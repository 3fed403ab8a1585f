package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyclebees/estimates-api/internal/config"
	"github.com/cyclebees/estimates-api/internal/database"
	"github.com/cyclebees/estimates-api/internal/notify"
	"github.com/cyclebees/estimates-api/internal/router"
	"github.com/cyclebees/estimates-api/internal/ws"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Unable to ping database: %v", err)
	}
	log.Println("Connected to database")

	queries := database.New(pool)

	hub := ws.NewHub()
	poller := notify.NewPoller(statusFetcher(queries), ws.NewDashboardAlerter(hub), cfg.StatusPollInterval)
	// Poll only while at least one dashboard is open.
	poller.SetVisible(false)
	hub.OnPresence(func(count int) {
		poller.SetVisible(count > 0)
	})
	hub.OnAcknowledge(poller.Acknowledge)
	go hub.Run()

	poller.Start(ctx)
	defer poller.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           router.New(cfg, queries, pool, hub, poller),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ERROR: server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: shutdown: %v", err)
	}
}

func statusFetcher(queries *database.Queries) notify.FetchFunc {
	return func(ctx context.Context) ([]notify.Status, error) {
		rows, err := queries.ListRequestStatuses(ctx)
		if err != nil {
			return nil, err
		}
		statuses := make([]notify.Status, len(rows))
		for i, row := range rows {
			statuses[i] = notify.Status{ID: row.ID, Status: string(row.Status), UpdatedAt: row.UpdatedAt}
		}
		return statuses, nil
	}
}
